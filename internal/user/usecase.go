package user

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/user/dto"
)

type UseCase interface {
	// Register creates the account and returns it with a fresh token.
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, input *dto.LoginInput) (*model.User, string, error)
}
