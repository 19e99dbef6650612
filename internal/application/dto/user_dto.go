package dto

import "time"

// RegisterRequest input registrasi (password plaintext, di-hash di use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // default "user"
}

// CreateUserRequest input pembuatan user lewat endpoint admin (sama dengan registrasi).
type CreateUserRequest = RegisterRequest

// UpdateUserRequest partial update user; field nil = tidak diubah.
type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Password *string          `json:"password"`
	Role     *string          `json:"role"`
	Foto     Nullable[string] `json:"foto"`
}

// UserResponse output user (tanpa password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Foto      *string   `json:"foto"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse listing user.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest input login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse output login: data user plus token yang diterbitkan.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
