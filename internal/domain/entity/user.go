package entity

import "time"

// Role bawaan untuk User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User akun aplikasi. Employee menunjuk ke User lewat UserID / CreatedByID.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, tidak pernah plaintext setelah persist
	Role         string
	Foto         *string // path publik /uploads/..., nil kalau belum ada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
