package repository

import "github.com/jnasution/hris-api/internal/domain/entity"

// UserRepository port persistensi untuk User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	// Update menimpa seluruh kolom mutable; ErrNotFound bila row sudah hilang.
	Update(user *entity.User) error
	Delete(id string) error
}
