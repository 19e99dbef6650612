package repository

import "github.com/jnasution/hris-api/internal/domain/entity"

// PendidikanRepository port persistensi riwayat pendidikan.
type PendidikanRepository interface {
	Create(p *entity.Pendidikan) error
	// GetByIDAndEmployee mengembalikan nil bila id tidak ada ATAU bukan milik employee tsb.
	GetByIDAndEmployee(id, employeeID string) (*entity.Pendidikan, error)
	ListByEmployee(employeeID string) ([]*entity.Pendidikan, error)
	Update(p *entity.Pendidikan) error
	Delete(id string) error
	DeleteByEmployee(employeeID string) error
}
