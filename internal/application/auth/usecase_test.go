package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jnasution/hris-api/internal/application/auth"
	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/entity"
	pkgjwt "github.com/jnasution/hris-api/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

const testSecret = "secret-untuk-unit-test-saja"

func newAuthUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "hris-api-test",
	})
}

func TestRegister_HashPasswordDanRoleDefault(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Budi", Email: "budi@hris.local", Password: "rahasia123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, out.Role, "role kosong default ke user")
	assert.NotEmpty(t, out.ID)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "rahasia123", stored.PasswordHash, "password tidak boleh tersimpan plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia123")))
}

func TestRegister_EmailDuplikat(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "A", Email: "sama@hris.local", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "B", Email: "sama@hris.local", Password: "y12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_MenerbitkanToken(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	reg, err := uc.Register(dto.RegisterRequest{
		Name: "Budi", Email: "budi@hris.local", Password: "rahasia123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "budi@hris.local", Password: "rahasia123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordSalah_Unauthorized(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Name: "Budi", Email: "budi@hris.local", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "budi@hris.local", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailTidakDikenal_Unauthorized(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "tidakada@hris.local", Password: "apapun"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email tak dikenal dan password salah harus menghasilkan error yang sama")
}
