package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/user/dto"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{
		Level:             "error",
		Encoding:          "console",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
}

func newUserUC(repo *fakeUserRepo) *userUseCase {
	return NewUserUseCase(repo, auth.NewTokenManager("test-secret"), testLogger()).(*userUseCase)
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUC(repo)

	u, token, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Raza",
		Email:    "  Raza@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "raza@example.com", u.Email)
	require.NotEqual(t, "secret123", u.Password)
	require.NotEmpty(t, token)

	claims, err := auth.NewTokenManager("test-secret").Parse(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUC(repo)

	in := &dto.RegisterInput{Name: "Raza", Email: "raza@example.com", Password: "secret123"}
	_, _, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, _, err = uc.Register(context.Background(), in)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegisterMissingFields(t *testing.T) {
	uc := newUserUC(newFakeUserRepo())

	_, _, err := uc.Register(context.Background(), &dto.RegisterInput{Email: "", Password: ""})
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUC(repo)

	registered, _, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Raza",
		Email:    "raza@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	u, token, err := uc.Login(context.Background(), &dto.LoginInput{
		Email:    "RAZA@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, registered.ID, u.ID)
	require.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUC(repo)

	_, _, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Raza",
		Email:    "raza@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), &dto.LoginInput{
		Email:    "raza@example.com",
		Password: "wrong",
	})
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := newUserUC(newFakeUserRepo())

	_, _, err := uc.Login(context.Background(), &dto.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
