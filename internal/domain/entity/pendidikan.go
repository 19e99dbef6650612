package entity

import "time"

// Pendidikan riwayat pendidikan seorang karyawan.
// Tidak punya kepemilikan sendiri; akses selalu lewat Employee induknya.
type Pendidikan struct {
	ID          string
	EmployeeID  string
	Jenjang     string // SD, SMP, SMA, D3, S1, ...
	NamaSekolah string
	TahunMasuk  int
	TahunLulus  *int // nil = masih berjalan
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
