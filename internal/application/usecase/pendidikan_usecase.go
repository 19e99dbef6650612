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

// PendidikanUseCase operasi riwayat pendidikan. Semua operasi memverifikasi
// akses pemanggil ke Employee induk lebih dulu.
type PendidikanUseCase struct {
	empRepo repository.EmployeeRepository
	repo    repository.PendidikanRepository
	policy  access.Policy
}

// NewPendidikanUseCase membangun use case riwayat pendidikan.
func NewPendidikanUseCase(empRepo repository.EmployeeRepository, repo repository.PendidikanRepository, policy access.Policy) *PendidikanUseCase {
	return &PendidikanUseCase{empRepo: empRepo, repo: repo, policy: policy}
}

// List mengembalikan riwayat pendidikan milik satu karyawan.
func (uc *PendidikanUseCase) List(callerID, employeeID string) ([]dto.PendidikanResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PendidikanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPendidikanResponse(p))
	}
	return items, nil
}

// Create menambah riwayat pendidikan di bawah karyawan yang boleh diakses.
func (uc *PendidikanUseCase) Create(callerID, employeeID string, in dto.CreatePendidikanRequest) (*dto.PendidikanResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	if in.Jenjang == "" || in.NamaSekolah == "" || in.TahunMasuk <= 0 {
		return nil, fmt.Errorf("%w: Jenjang, nama_sekolah, tahun_masuk wajib diisi", domain.ErrInvalidInput)
	}
	now := time.Now()
	p := &entity.Pendidikan{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		Jenjang:     in.Jenjang,
		NamaSekolah: in.NamaSekolah,
		TahunMasuk:  in.TahunMasuk,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.TahunLulus.Set && in.TahunLulus.Valid {
		v := in.TahunLulus.Value
		p.TahunLulus = &v
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPendidikanResponse(p), nil
}

// Update partial update; id anak hanya dicari di bawah employee tsb.
func (uc *PendidikanUseCase) Update(callerID, employeeID, id string, in dto.UpdatePendidikanRequest) (*dto.PendidikanResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByIDAndEmployee(id, employeeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: Data pendidikan tidak ditemukan", domain.ErrNotFound)
	}
	if in.Jenjang != nil && *in.Jenjang != "" {
		p.Jenjang = *in.Jenjang
	}
	if in.NamaSekolah != nil && *in.NamaSekolah != "" {
		p.NamaSekolah = *in.NamaSekolah
	}
	if in.TahunMasuk != nil {
		if *in.TahunMasuk <= 0 {
			return nil, fmt.Errorf("%w: tahun_masuk tidak valid", domain.ErrInvalidInput)
		}
		p.TahunMasuk = *in.TahunMasuk
	}
	if in.TahunLulus.Set {
		if in.TahunLulus.Valid {
			v := in.TahunLulus.Value
			p.TahunLulus = &v
		} else {
			p.TahunLulus = nil
		}
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPendidikanResponse(p), nil
}

// Delete menghapus satu riwayat pendidikan.
func (uc *PendidikanUseCase) Delete(callerID, employeeID, id string) error {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return err
	}
	p, err := uc.repo.GetByIDAndEmployee(id, employeeID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: Data pendidikan tidak ditemukan", domain.ErrNotFound)
	}
	return uc.repo.Delete(id)
}

func toPendidikanResponse(p *entity.Pendidikan) *dto.PendidikanResponse {
	if p == nil {
		return nil
	}
	return &dto.PendidikanResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Jenjang:     p.Jenjang,
		NamaSekolah: p.NamaSekolah,
		TahunMasuk:  p.TahunMasuk,
		TahunLulus:  p.TahunLulus,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
