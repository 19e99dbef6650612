package usecase

import (
	"context"
	"fmt"

	"github.com/jnasution/hris-api/internal/domain/access"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

// BiodataPDFUseCase menghasilkan PDF biodata karyawan lengkap dengan riwayat
// pendidikan, pekerjaan, dan keluarganya. Aturan visibilitas sama dengan GET.
type BiodataPDFUseCase struct {
	empRepo   repository.EmployeeRepository
	pendRepo  repository.PendidikanRepository
	pekRepo   repository.PekerjaanRepository
	kelRepo   repository.KeluargaRepository
	policy    access.Policy
	generator BiodataPDFGenerator
}

// NewBiodataPDFUseCase membangun use case dengan seluruh dependensinya.
func NewBiodataPDFUseCase(
	empRepo repository.EmployeeRepository,
	pendRepo repository.PendidikanRepository,
	pekRepo repository.PekerjaanRepository,
	kelRepo repository.KeluargaRepository,
	policy access.Policy,
	generator BiodataPDFGenerator,
) *BiodataPDFUseCase {
	return &BiodataPDFUseCase{
		empRepo:   empRepo,
		pendRepo:  pendRepo,
		pekRepo:   pekRepo,
		kelRepo:   kelRepo,
		policy:    policy,
		generator: generator,
	}
}

// Download mengembalikan (pdfBytes, filename, nil) atau ErrNotFound dengan
// kebijakan seragam yang sama dengan pembacaan biasa.
func (uc *BiodataPDFUseCase) Download(ctx context.Context, callerID, employeeID string) ([]byte, string, error) {
	e, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID)
	if err != nil {
		return nil, "", err
	}
	pendidikan, err := uc.pendRepo.ListByEmployee(e.ID)
	if err != nil {
		return nil, "", err
	}
	pekerjaan, err := uc.pekRepo.ListByEmployee(e.ID)
	if err != nil {
		return nil, "", err
	}
	keluarga, err := uc.kelRepo.ListByEmployee(e.ID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateBiodataPDF(ctx, e, pendidikan, pekerjaan, keluarga)
	if err != nil {
		return nil, "", fmt.Errorf("pdf biodata: %w", err)
	}
	return pdfBytes, fmt.Sprintf("biodata_%s.pdf", e.NIK), nil
}
