package repository

import "github.com/jnasution/hris-api/internal/domain/entity"

// EmployeeRepository port persistensi untuk Employee.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	// List mengembalikan semua karyawan (varian open), terbaru dulu.
	List(limit, offset int) ([]*entity.Employee, error)
	// ListByOwnerOrCreator memfilter di sisi server: user_id = caller OR created_by_id = caller.
	ListByOwnerOrCreator(callerID string, limit, offset int) ([]*entity.Employee, error)
	// Update menimpa kolom mutable; ErrNotFound bila row hilang di antara fetch dan persist.
	Update(e *entity.Employee) error
	Delete(id string) error
}
