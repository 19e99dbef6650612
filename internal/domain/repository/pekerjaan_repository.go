package repository

import "github.com/jnasution/hris-api/internal/domain/entity"

// PekerjaanRepository port persistensi riwayat pekerjaan.
type PekerjaanRepository interface {
	Create(p *entity.Pekerjaan) error
	GetByIDAndEmployee(id, employeeID string) (*entity.Pekerjaan, error)
	ListByEmployee(employeeID string) ([]*entity.Pekerjaan, error)
	Update(p *entity.Pekerjaan) error
	Delete(id string) error
	DeleteByEmployee(employeeID string) error
}
