package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
	"github.com/jnasution/hris-api/pkg/logger"
)

// UserUseCase CRUD user. User tidak punya konsep creator sehingga tidak
// melewati ownership policy; satu-satunya aturan adalah foto hanya boleh
// diganti oleh user yang bersangkutan.
type UserUseCase struct {
	repo  repository.UserRepository
	files FileRemover
	log   *logger.Logger
}

// NewUserUseCase membangun use case user.
func NewUserUseCase(repo repository.UserRepository, files FileRemover, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, files: files, log: log}
}

// List mengembalikan user terbaru dulu.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID mengembalikan ErrUserNotFound bila id tidak ada.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Create membuat user (endpoint admin; sama dengan registrasi).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update partial update: hanya field yang dikirim yang diubah.
// Password dikirim plaintext dan di-hash ulang di sini.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	var oldFoto *string
	if in.Foto.Set {
		oldFoto = user.Foto
		if in.Foto.Valid {
			v := in.Foto.Value
			user.Foto = &v
		} else {
			user.Foto = nil
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	uc.removeOldFoto(oldFoto, user.Foto)
	return toUserResponse(user), nil
}

// Delete menghapus user; employee yang menunjuk user ini dibiarkan (SET NULL di schema).
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.removeOldFoto(user.Foto, nil)
	return nil
}

// SetFoto mengganti foto profil. Hanya user ybs yang boleh (ErrForbidden bila
// caller != target); file lama dihapus best-effort setelah persist.
func (uc *UserUseCase) SetFoto(callerID, id, publicPath string) (*dto.UserResponse, error) {
	if callerID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	old := user.Foto
	user.Foto = &publicPath
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	uc.removeOldFoto(old, user.Foto)
	return toUserResponse(user), nil
}

// removeOldFoto menghapus file lama bila path-nya berganti. Gagal hapus hanya
// dicatat di log, tidak pernah menggagalkan response.
func (uc *UserUseCase) removeOldFoto(old, current *string) {
	if old == nil {
		return
	}
	if current != nil && *current == *old {
		return
	}
	if err := uc.files.Remove(*old); err != nil {
		uc.log.Warn().Err(err).Str("path", *old).Msg("hapus foto lama gagal")
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Foto:      u.Foto,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
