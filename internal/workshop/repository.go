package workshop

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
)

type Repository interface {
	Create(ctx context.Context, w *model.Workshop) error
	FindByID(ctx context.Context, id string) (*model.Workshop, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.Workshop, error)
	Update(ctx context.Context, w *model.Workshop) error
	Delete(ctx context.Context, id string) error
}
