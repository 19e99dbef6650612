package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pekerjaan riwayat pekerjaan seorang karyawan.
type Pekerjaan struct {
	ID             string
	EmployeeID     string
	NamaPerusahaan string
	Jabatan        string
	TahunMasuk     int
	TahunKeluar    *int             // nil = masih bekerja
	Gaji           *decimal.Decimal // gaji terakhir, opsional (NUMERIC)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
