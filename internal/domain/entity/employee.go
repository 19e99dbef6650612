package entity

import "time"

// Employee data karyawan. UserID adalah pemilik record (boleh kosong untuk
// karyawan yang dibuatkan admin tanpa akun), CreatedByID adalah pembuatnya.
type Employee struct {
	ID           string
	UserID       *string
	CreatedByID  string
	NIK          string // nomor induk kependudukan, unik
	NamaLengkap  string
	TempatLahir  string
	TanggalLahir time.Time
	JenisKelamin string
	Alamat       string
	Foto         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
