package repository

import "github.com/jnasution/hris-api/internal/domain/entity"

// KeluargaRepository port persistensi anggota keluarga.
type KeluargaRepository interface {
	Create(k *entity.Keluarga) error
	GetByIDAndEmployee(id, employeeID string) (*entity.Keluarga, error)
	ListByEmployee(employeeID string) ([]*entity.Keluarga, error)
	Update(k *entity.Keluarga) error
	Delete(id string) error
	DeleteByEmployee(employeeID string) error
}
