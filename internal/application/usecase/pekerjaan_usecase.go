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

// PekerjaanUseCase operasi riwayat pekerjaan, selalu lewat cek induk.
type PekerjaanUseCase struct {
	empRepo repository.EmployeeRepository
	repo    repository.PekerjaanRepository
	policy  access.Policy
}

// NewPekerjaanUseCase membangun use case riwayat pekerjaan.
func NewPekerjaanUseCase(empRepo repository.EmployeeRepository, repo repository.PekerjaanRepository, policy access.Policy) *PekerjaanUseCase {
	return &PekerjaanUseCase{empRepo: empRepo, repo: repo, policy: policy}
}

// List mengembalikan riwayat pekerjaan milik satu karyawan.
func (uc *PekerjaanUseCase) List(callerID, employeeID string) ([]dto.PekerjaanResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PekerjaanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPekerjaanResponse(p))
	}
	return items, nil
}

// Create menambah riwayat pekerjaan.
func (uc *PekerjaanUseCase) Create(callerID, employeeID string, in dto.CreatePekerjaanRequest) (*dto.PekerjaanResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	if in.NamaPerusahaan == "" || in.Jabatan == "" || in.TahunMasuk <= 0 {
		return nil, fmt.Errorf("%w: Nama perusahaan, jabatan, tahun_masuk wajib diisi", domain.ErrInvalidInput)
	}
	now := time.Now()
	p := &entity.Pekerjaan{
		ID:             uuid.New().String(),
		EmployeeID:     employeeID,
		NamaPerusahaan: in.NamaPerusahaan,
		Jabatan:        in.Jabatan,
		TahunMasuk:     in.TahunMasuk,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.TahunKeluar.Set && in.TahunKeluar.Valid {
		v := in.TahunKeluar.Value
		p.TahunKeluar = &v
	}
	if in.Gaji.Set && in.Gaji.Valid {
		v := in.Gaji.Value
		if v.IsNegative() {
			return nil, fmt.Errorf("%w: gaji tidak boleh negatif", domain.ErrInvalidInput)
		}
		p.Gaji = &v
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPekerjaanResponse(p), nil
}

// Update partial update riwayat pekerjaan.
func (uc *PekerjaanUseCase) Update(callerID, employeeID, id string, in dto.UpdatePekerjaanRequest) (*dto.PekerjaanResponse, error) {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByIDAndEmployee(id, employeeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: Data pekerjaan tidak ditemukan", domain.ErrNotFound)
	}
	if in.NamaPerusahaan != nil && *in.NamaPerusahaan != "" {
		p.NamaPerusahaan = *in.NamaPerusahaan
	}
	if in.Jabatan != nil && *in.Jabatan != "" {
		p.Jabatan = *in.Jabatan
	}
	if in.TahunMasuk != nil {
		if *in.TahunMasuk <= 0 {
			return nil, fmt.Errorf("%w: tahun_masuk tidak valid", domain.ErrInvalidInput)
		}
		p.TahunMasuk = *in.TahunMasuk
	}
	if in.TahunKeluar.Set {
		if in.TahunKeluar.Valid {
			v := in.TahunKeluar.Value
			p.TahunKeluar = &v
		} else {
			p.TahunKeluar = nil
		}
	}
	if in.Gaji.Set {
		if in.Gaji.Valid {
			v := in.Gaji.Value
			if v.IsNegative() {
				return nil, fmt.Errorf("%w: gaji tidak boleh negatif", domain.ErrInvalidInput)
			}
			p.Gaji = &v
		} else {
			p.Gaji = nil
		}
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPekerjaanResponse(p), nil
}

// Delete menghapus satu riwayat pekerjaan.
func (uc *PekerjaanUseCase) Delete(callerID, employeeID, id string) error {
	if _, err := visibleEmployee(uc.empRepo, uc.policy, callerID, employeeID); err != nil {
		return err
	}
	p, err := uc.repo.GetByIDAndEmployee(id, employeeID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: Data pekerjaan tidak ditemukan", domain.ErrNotFound)
	}
	return uc.repo.Delete(id)
}

func toPekerjaanResponse(p *entity.Pekerjaan) *dto.PekerjaanResponse {
	if p == nil {
		return nil
	}
	return &dto.PekerjaanResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		NamaPerusahaan: p.NamaPerusahaan,
		Jabatan:        p.Jabatan,
		TahunMasuk:     p.TahunMasuk,
		TahunKeluar:    p.TahunKeluar,
		Gaji:           p.Gaji,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
