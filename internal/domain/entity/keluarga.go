package entity

import "time"

// Keluarga anggota keluarga seorang karyawan.
type Keluarga struct {
	ID           string
	EmployeeID   string
	Hubungan     string // istri, suami, anak, ...
	Nama         string
	TanggalLahir *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
