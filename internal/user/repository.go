package user

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
)

type Repository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}
