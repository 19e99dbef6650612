package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/access"
	"github.com/jnasution/hris-api/internal/domain/entity"
)

func setNullable[T any](v T) dto.Nullable[T] {
	return dto.Nullable[T]{Set: true, Valid: true, Value: v}
}

func nullNullable[T any]() dto.Nullable[T] {
	return dto.Nullable[T]{Set: true, Valid: false}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pendidikan
// ──────────────────────────────────────────────────────────────────────────────

func TestPendidikanCreate_IndukTidakBolehDiakses_NotFound(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewPendidikanUseCase(empRepo, newFakePendidikanRepo(), access.ScopedPolicy{})

	_, err := uc.Create("u2", "e1", dto.CreatePendidikanRequest{
		Jenjang: "S1", NamaSekolah: "ITB", TahunMasuk: 2012,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound,
		"akses anak dari induk yang tidak terlihat harus 404, bukan 403")
	assert.Contains(t, err.Error(), "Karyawan tidak ditemukan")
}

func TestPendidikanCreate_ValidasiFieldWajib(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewPendidikanUseCase(empRepo, newFakePendidikanRepo(), access.ScopedPolicy{})

	_, err := uc.Create("u1", "e1", dto.CreatePendidikanRequest{Jenjang: "S1"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Jenjang, nama_sekolah, tahun_masuk wajib diisi")
}

func TestPendidikanCreate_DenganTahunLulus(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewPendidikanUseCase(empRepo, newFakePendidikanRepo(), access.ScopedPolicy{})

	out, err := uc.Create("u1", "e1", dto.CreatePendidikanRequest{
		Jenjang: "S1", NamaSekolah: "ITB", TahunMasuk: 2012, TahunLulus: setNullable(2016),
	})
	require.NoError(t, err)

	require.NotNil(t, out.TahunLulus)
	assert.Equal(t, 2016, *out.TahunLulus)
	assert.Equal(t, "e1", out.EmployeeID)
}

func TestPendidikanUpdate_TahunLulusNullMengosongkan(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	lulus := 2016
	repo := newFakePendidikanRepo(&entity.Pendidikan{
		ID: "p1", EmployeeID: "e1", Jenjang: "S1", NamaSekolah: "ITB",
		TahunMasuk: 2012, TahunLulus: &lulus,
	})
	uc := usecase.NewPendidikanUseCase(empRepo, repo, access.ScopedPolicy{})

	out, err := uc.Update("u1", "e1", "p1", dto.UpdatePendidikanRequest{
		TahunLulus: nullNullable[int](),
	})
	require.NoError(t, err)

	assert.Nil(t, out.TahunLulus, "tahunLulus: null harus mengosongkan kolom")
	assert.Equal(t, "ITB", out.NamaSekolah, "field lain tidak tersentuh")
}

func TestPendidikanUpdate_AnakMilikKaryawanLain_NotFound(t *testing.T) {
	// p1 milik e2; pencarian anak dibatasi id DAN employee_id
	empRepo := newFakeEmployeeRepo(
		karyawanMilik("e1", "u1", "u1"),
		karyawanMilik("e2", "u1", "u1"),
	)
	repo := newFakePendidikanRepo(&entity.Pendidikan{
		ID: "p1", EmployeeID: "e2", Jenjang: "S1", NamaSekolah: "ITB", TahunMasuk: 2012,
	})
	uc := usecase.NewPendidikanUseCase(empRepo, repo, access.ScopedPolicy{})

	_, err := uc.Update("u1", "e1", "p1", dto.UpdatePendidikanRequest{Jenjang: ptr("S2")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Data pendidikan tidak ditemukan")
}

func TestPendidikanDelete_OK(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	repo := newFakePendidikanRepo(&entity.Pendidikan{
		ID: "p1", EmployeeID: "e1", Jenjang: "SMA", NamaSekolah: "SMAN 1", TahunMasuk: 2008,
	})
	uc := usecase.NewPendidikanUseCase(empRepo, repo, access.ScopedPolicy{})

	require.NoError(t, uc.Delete("u1", "e1", "p1"))

	got, err := repo.GetByIDAndEmployee("p1", "e1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pekerjaan
// ──────────────────────────────────────────────────────────────────────────────

func TestPekerjaanCreate_DenganGaji(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewPekerjaanUseCase(empRepo, newFakePekerjaanRepo(), access.ScopedPolicy{})

	out, err := uc.Create("u1", "e1", dto.CreatePekerjaanRequest{
		NamaPerusahaan: "PT Maju",
		Jabatan:        "Staff",
		TahunMasuk:     2018,
		Gaji:           setNullable(decimal.NewFromInt(7500000)),
	})
	require.NoError(t, err)

	require.NotNil(t, out.Gaji)
	assert.True(t, out.Gaji.Equal(decimal.NewFromInt(7500000)))
}

func TestPekerjaanCreate_GajiNegatif_InvalidInput(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewPekerjaanUseCase(empRepo, newFakePekerjaanRepo(), access.ScopedPolicy{})

	_, err := uc.Create("u1", "e1", dto.CreatePekerjaanRequest{
		NamaPerusahaan: "PT Maju",
		Jabatan:        "Staff",
		TahunMasuk:     2018,
		Gaji:           setNullable(decimal.NewFromInt(-1)),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "gaji")
}

func TestPekerjaanCreate_ValidasiFieldWajib(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewPekerjaanUseCase(empRepo, newFakePekerjaanRepo(), access.ScopedPolicy{})

	_, err := uc.Create("u1", "e1", dto.CreatePekerjaanRequest{NamaPerusahaan: "PT Maju"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Nama perusahaan, jabatan, tahun_masuk wajib diisi")
}

func TestPekerjaanUpdate_TahunKeluarNullMengosongkan(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	keluar := 2022
	repo := newFakePekerjaanRepo(&entity.Pekerjaan{
		ID: "w1", EmployeeID: "e1", NamaPerusahaan: "PT Maju", Jabatan: "Staff",
		TahunMasuk: 2018, TahunKeluar: &keluar,
	})
	uc := usecase.NewPekerjaanUseCase(empRepo, repo, access.ScopedPolicy{})

	out, err := uc.Update("u1", "e1", "w1", dto.UpdatePekerjaanRequest{
		TahunKeluar: nullNullable[int](),
	})
	require.NoError(t, err)
	assert.Nil(t, out.TahunKeluar)
}

// ──────────────────────────────────────────────────────────────────────────────
// Keluarga
// ──────────────────────────────────────────────────────────────────────────────

func TestKeluargaCreate_ValidasiFieldWajib(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewKeluargaUseCase(empRepo, newFakeKeluargaRepo(), access.ScopedPolicy{})

	_, err := uc.Create("u1", "e1", dto.CreateKeluargaRequest{Hubungan: "Istri"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Hubungan dan nama wajib diisi")
}

func TestKeluargaCreate_DenganTanggalLahir(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewKeluargaUseCase(empRepo, newFakeKeluargaRepo(), access.ScopedPolicy{})

	out, err := uc.Create("u1", "e1", dto.CreateKeluargaRequest{
		Hubungan:     "Anak",
		Nama:         "Dewi",
		TanggalLahir: setNullable("2015-06-01"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.TanggalLahir)
	assert.Equal(t, "2015-06-01", *out.TanggalLahir)
}

func TestKeluargaCreate_TanggalLahirFormatSalah_InvalidInput(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewKeluargaUseCase(empRepo, newFakeKeluargaRepo(), access.ScopedPolicy{})

	_, err := uc.Create("u1", "e1", dto.CreateKeluargaRequest{
		Hubungan:     "Anak",
		Nama:         "Dewi",
		TanggalLahir: setNullable("01/06/2015"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKeluargaList_IndukTidakBolehDiakses_NotFound(t *testing.T) {
	empRepo := newFakeEmployeeRepo(karyawanMilik("e1", "u1", "u1"))
	uc := usecase.NewKeluargaUseCase(empRepo, newFakeKeluargaRepo(), access.ScopedPolicy{})

	_, err := uc.List("u2", "e1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
