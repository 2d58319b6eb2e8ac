package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/user"
	"github.com/razasalaar/workshop-manager/internal/user/dto"
)

type userUseCase struct {
	repo   user.Repository
	tokens *auth.TokenManager
	logger logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, tokens *auth.TokenManager, log logger.ZapLogger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		tokens: tokens,
		logger: log,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, "", apperr.Validation("email and password are required")
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Persistence("unable to check email", err)
	}
	if existing != nil {
		return nil, "", apperr.Conflict("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Persistence("unable to secure password", err)
	}

	now := time.Now()
	u := &model.User{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: string(hashed),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		// The unique index closes the check-then-create race.
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "unique constraint") {
			return nil, "", apperr.Conflict("email already exists")
		}
		return nil, "", apperr.Persistence("unable to create user", err)
	}

	token, err := uc.tokens.Generate(u.ID)
	if err != nil {
		return nil, "", apperr.Persistence("unable to generate token", err)
	}
	return u, token, nil
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Persistence("unable to load user", err)
	}
	if u == nil {
		return nil, "", apperr.Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
		return nil, "", apperr.Unauthorized("invalid credentials")
	}

	token, err := uc.tokens.Generate(u.ID)
	if err != nil {
		return nil, "", apperr.Persistence("unable to generate token", err)
	}
	return u, token, nil
}
