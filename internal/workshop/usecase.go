package workshop

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/workshop/dto"
)

type UseCase interface {
	CreateWorkshop(ctx context.Context, input *dto.CreateWorkshopInput) (*model.Workshop, error)
	ListWorkshops(ctx context.Context, userID string) ([]model.Workshop, error)
	RenameWorkshop(ctx context.Context, input *dto.RenameWorkshopInput) (*model.Workshop, error)
	DeleteWorkshop(ctx context.Context, userID, id string) error
}
