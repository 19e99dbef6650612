package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/access"
	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

// KeluargaUseCase operasi anggota keluarga, selalu lewat cek induk.
type KeluargaUseCase struct {
	empRepo repository.EmployeeRepository
	repo    repository.KeluargaRepository
	policy  access.Policy
}

// NewKeluargaUseCase membangun use case anggota keluarga.
func NewKeluargaUseCase(empRepo repository.EmployeeRepository, repo repository.KeluargaRepository, policy access.Policy) *KeluargaUseCase {
	return &KeluargaUseCase{empRepo: empRepo, repo: repo, policy: policy}
}

// List mengembalikan anggota keluarga milik satu karyawan.
func (uc *KeluargaUseCase) List(callerID, employeeID string) ([]dto.KeluargaResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.KeluargaResponse, 0, len(list))
	for _, k := range list {
		items = append(items, *toKeluargaResponse(k))
	}
	return items, nil
}

// Create menambah anggota keluarga.
func (uc *KeluargaUseCase) Create(callerID, employeeID string, in dto.CreateKeluargaRequest) (*dto.KeluargaResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	if in.Hubungan == "" || in.Nama == "" {
		return nil, fmt.Errorf("%w: Hubungan dan nama wajib diisi", domain.ErrInvalidInput)
	}
	now := time.Now()
	k := &entity.Keluarga{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Hubungan:   in.Hubungan,
		Nama:       in.Nama,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.TanggalLahir.Set && in.TanggalLahir.Valid {
		t, err := parseTanggal("tanggalLahir", in.TanggalLahir.Value)
		if err != nil {
			return nil, err
		}
		k.TanggalLahir = &t
	}
	if err := uc.repo.Create(k); err != nil {
		return nil, err
	}
	return toKeluargaResponse(k), nil
}

// Update partial update anggota keluarga; tanggalLahir null mengosongkan eksplisit.
func (uc *KeluargaUseCase) Update(callerID, employeeID, id string, in dto.UpdateKeluargaRequest) (*dto.KeluargaResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	k, err := uc.repo.GetByIDAndEmployee(id, employeeID)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, fmt.Errorf("%w: Data keluarga tidak ditemukan", domain.ErrNotFound)
	}
	if in.Hubungan != nil && *in.Hubungan != "" {
		k.Hubungan = *in.Hubungan
	}
	if in.Nama != nil && *in.Nama != "" {
		k.Nama = *in.Nama
	}
	if in.TanggalLahir.Set {
		if in.TanggalLahir.Valid {
			t, err := parseTanggal("tanggalLahir", in.TanggalLahir.Value)
			if err != nil {
				return nil, err
			}
			k.TanggalLahir = &t
		} else {
			k.TanggalLahir = nil
		}
	}
	k.UpdatedAt = time.Now()
	if err := uc.repo.Update(k); err != nil {
		return nil, err
	}
	return toKeluargaResponse(k), nil
}

// Delete menghapus satu anggota keluarga.
func (uc *KeluargaUseCase) Delete(callerID, employeeID, id string) error {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return err
	}
	k, err := uc.repo.GetByIDAndEmployee(id, employeeID)
	if err != nil {
		return err
	}
	if k == nil {
		return fmt.Errorf("%w: Data keluarga tidak ditemukan", domain.ErrNotFound)
	}
	return uc.repo.Delete(id)
}

func toKeluargaResponse(k *entity.Keluarga) *dto.KeluargaResponse {
	if k == nil {
		return nil
	}
	resp := &dto.KeluargaResponse{
		ID:         k.ID,
		EmployeeID: k.EmployeeID,
		Hubungan:   k.Hubungan,
		Nama:       k.Nama,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
	if k.TanggalLahir != nil {
		s := formatTanggal(*k.TanggalLahir)
		resp.TanggalLahir = &s
	}
	return resp
}
