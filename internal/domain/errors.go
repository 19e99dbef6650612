package domain

import "errors"

// Error domain (tanpa dependensi eksternal).
var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrUserNotFound       = errors.New("user tidak ditemukan")
	ErrEmailAlreadyExists = errors.New("email sudah terpakai")
	ErrNIKAlreadyExists   = errors.New("nik sudah terpakai")
	ErrInvalidInput       = errors.New("input tidak valid")
	ErrUnauthenticated    = errors.New("identitas pemanggil tidak ada")
	ErrUnauthorized       = errors.New("tidak terotorisasi")
	ErrForbidden          = errors.New("akses ditolak")
)
