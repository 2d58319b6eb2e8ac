package product

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	// FindByIDForUser resolves a product only when its workshop belongs to userID.
	FindByIDForUser(ctx context.Context, id, userID string) (*model.Product, error)
	FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	CountSales(ctx context.Context, productID string) (int, error)
}
