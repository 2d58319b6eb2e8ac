package sale

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/sale/dto"
)

type UseCase interface {
	RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error)
	ListSales(ctx context.Context, userID, workshopID string) ([]model.Sale, error)
}
