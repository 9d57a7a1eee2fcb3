package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jquiroga/tienda-api/internal/application/auth"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/application/validate"
	"github.com/jquiroga/tienda-api/internal/domain"
	"github.com/jquiroga/tienda-api/internal/domain/entity"
	"github.com/jquiroga/tienda-api/internal/domain/repository"
	pkgjwt "github.com/jquiroga/tienda-api/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User // por email
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	r.users[user.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	}, validate.New())
}

func validSignUp() dto.SignUpRequest {
	return dto.SignUpRequest{
		Email:     "ana@example.com",
		Password:  "secreta1",
		FirstName: "Ana",
		LastName:  "García",
		Role:      "admin",
	}
}

func TestSignUp_HasheaConBcrypt(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, "admin", out.Role)

	stored := repo.users["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta1", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")))
}

func TestSignUp_EmailDuplicadoFalla(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = uc.SignUp(context.Background(), validSignUp())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignUp_RolInvalidoFalla(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	in := validSignUp()
	in.Role = "superuser"
	_, err := uc.SignUp(context.Background(), in)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "role")
}

func TestLogin_DevuelveTokenConClaims(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	_, err := uc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreta1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)

	claims, err := pkgjwt.Parse("secret-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.FirstName)
	assert.Equal(t, "García", claims.LastName)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_PasswordIncorrectoFalla(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())
	_, err := uc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistenteFalla(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email inexistente y password incorrecto responden igual")
}
