package dto

import "time"

// CreateEmployeeRequest input pembuatan karyawan.
// Pada varian scoped, createdById selalu diisi dari identitas pemanggil,
// bukan dari body; userId (bila dikirim) harus sama dengan pemanggil.
type CreateEmployeeRequest struct {
	UserID       *string `json:"userId"`
	NIK          string  `json:"nik"`
	NamaLengkap  string  `json:"namaLengkap"`
	TempatLahir  string  `json:"tempatLahir"`
	TanggalLahir string  `json:"tanggalLahir"` // "2006-01-02" atau RFC3339
	JenisKelamin string  `json:"jenisKelamin"`
	Alamat       string  `json:"alamat"`
	Foto         *string `json:"foto"`
}

// UpdateEmployeeRequest partial update karyawan; field nil = tidak diubah.
// Foto memakai Nullable supaya bisa dikosongkan eksplisit dengan null.
type UpdateEmployeeRequest struct {
	UserID       *string          `json:"userId"`
	CreatedByID  *string          `json:"createdById"`
	NIK          *string          `json:"nik"`
	NamaLengkap  *string          `json:"namaLengkap"`
	TempatLahir  *string          `json:"tempatLahir"`
	TanggalLahir *string          `json:"tanggalLahir"`
	JenisKelamin *string          `json:"jenisKelamin"`
	Alamat       *string          `json:"alamat"`
	Foto         Nullable[string] `json:"foto"`
}

// EmployeeResponse output karyawan lengkap dengan anak-anaknya.
type EmployeeResponse struct {
	ID           string               `json:"id"`
	UserID       *string              `json:"userId"`
	CreatedByID  string               `json:"createdById"`
	NIK          string               `json:"nik"`
	NamaLengkap  string               `json:"namaLengkap"`
	TempatLahir  string               `json:"tempatLahir"`
	TanggalLahir string               `json:"tanggalLahir"` // "2006-01-02"
	JenisKelamin string               `json:"jenisKelamin"`
	Alamat       string               `json:"alamat"`
	Foto         *string              `json:"foto"`
	Pendidikan   []PendidikanResponse `json:"pendidikan"`
	Pekerjaan    []PekerjaanResponse  `json:"pekerjaan"`
	Keluarga     []KeluargaResponse   `json:"keluarga"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// EmployeeListResponse listing karyawan.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
