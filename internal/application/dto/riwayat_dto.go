package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Pendidikan ──

// CreatePendidikanRequest input riwayat pendidikan baru.
type CreatePendidikanRequest struct {
	Jenjang     string        `json:"jenjang"`
	NamaSekolah string        `json:"namaSekolah"`
	TahunMasuk  int           `json:"tahunMasuk"`
	TahunLulus  Nullable[int] `json:"tahunLulus"`
}

// UpdatePendidikanRequest partial update riwayat pendidikan.
type UpdatePendidikanRequest struct {
	Jenjang     *string       `json:"jenjang"`
	NamaSekolah *string       `json:"namaSekolah"`
	TahunMasuk  *int          `json:"tahunMasuk"`
	TahunLulus  Nullable[int] `json:"tahunLulus"`
}

// PendidikanResponse output riwayat pendidikan.
type PendidikanResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Jenjang     string    `json:"jenjang"`
	NamaSekolah string    `json:"namaSekolah"`
	TahunMasuk  int       `json:"tahunMasuk"`
	TahunLulus  *int      `json:"tahunLulus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ── Pekerjaan ──

// CreatePekerjaanRequest input riwayat pekerjaan baru.
type CreatePekerjaanRequest struct {
	NamaPerusahaan string                    `json:"namaPerusahaan"`
	Jabatan        string                    `json:"jabatan"`
	TahunMasuk     int                       `json:"tahunMasuk"`
	TahunKeluar    Nullable[int]             `json:"tahunKeluar"`
	Gaji           Nullable[decimal.Decimal] `json:"gaji"`
}

// UpdatePekerjaanRequest partial update riwayat pekerjaan.
type UpdatePekerjaanRequest struct {
	NamaPerusahaan *string                   `json:"namaPerusahaan"`
	Jabatan        *string                   `json:"jabatan"`
	TahunMasuk     *int                      `json:"tahunMasuk"`
	TahunKeluar    Nullable[int]             `json:"tahunKeluar"`
	Gaji           Nullable[decimal.Decimal] `json:"gaji"`
}

// PekerjaanResponse output riwayat pekerjaan.
type PekerjaanResponse struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employeeId"`
	NamaPerusahaan string           `json:"namaPerusahaan"`
	Jabatan        string           `json:"jabatan"`
	TahunMasuk     int              `json:"tahunMasuk"`
	TahunKeluar    *int             `json:"tahunKeluar"`
	Gaji           *decimal.Decimal `json:"gaji"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ── Keluarga ──

// CreateKeluargaRequest input anggota keluarga baru.
type CreateKeluargaRequest struct {
	Hubungan     string           `json:"hubungan"`
	Nama         string           `json:"nama"`
	TanggalLahir Nullable[string] `json:"tanggalLahir"` // "2006-01-02"
}

// UpdateKeluargaRequest partial update anggota keluarga.
type UpdateKeluargaRequest struct {
	Hubungan     *string          `json:"hubungan"`
	Nama         *string          `json:"nama"`
	TanggalLahir Nullable[string] `json:"tanggalLahir"`
}

// KeluargaResponse output anggota keluarga.
type KeluargaResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Hubungan     string    `json:"hubungan"`
	Nama         string    `json:"nama"`
	TanggalLahir *string   `json:"tanggalLahir"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
