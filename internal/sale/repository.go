package sale

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
)

type Repository interface {
	// FindProductForUser loads the product a proposed sale references, scoped
	// to the owning user.
	FindProductForUser(ctx context.Context, productID, userID string) (*model.Product, error)

	// CreateWithStockDeduction persists the sale and decrements the product's
	// stock as one transaction: either both rows land or neither does. Losing
	// the conditional decrement yields an insufficient-stock error carrying
	// the quantities observed at that moment. The cost fields on s are
	// overwritten with the cost_per_piece read inside the transaction.
	CreateWithStockDeduction(ctx context.Context, s *model.Sale) error

	FindAllByUser(ctx context.Context, userID, workshopID string) ([]model.Sale, error)
	FindByTransactionID(ctx context.Context, userID, transactionID string) (*model.Sale, error)
}
