package usecase

import (
	"context"

	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

// TxRunner menjalankan callback dalam satu transaksi database.
// Dipakai untuk cascade delete karyawan beserta seluruh anaknya.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		empRepo repository.EmployeeRepository,
		pendRepo repository.PendidikanRepository,
		pekRepo repository.PekerjaanRepository,
		kelRepo repository.KeluargaRepository,
	) error) error
}

// FileRemover menghapus file upload berdasarkan path publiknya.
// Penghapusan best-effort: file yang sudah tidak ada dianggap sukses.
type FileRemover interface {
	Remove(publicPath string) error
}

// BiodataPDFGenerator membangun PDF biodata karyawan.
type BiodataPDFGenerator interface {
	GenerateBiodataPDF(
		ctx context.Context,
		e *entity.Employee,
		pendidikan []*entity.Pendidikan,
		pekerjaan []*entity.Pekerjaan,
		keluarga []*entity.Keluarga,
	) ([]byte, error)
}
