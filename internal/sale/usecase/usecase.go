package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/event"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/cache"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/sale"
	"github.com/razasalaar/workshop-manager/internal/sale/dto"
)

// Publisher is the slice of the broker the sale workflow needs.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type saleUseCase struct {
	repo      sale.Repository
	cache     *cache.RedisClient
	publisher Publisher
	logger    logger.ZapLogger
}

func NewSaleUseCase(repo sale.Repository, cache *cache.RedisClient, publisher Publisher, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *saleUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	// A retried transaction id means the first attempt may have committed
	// even though the caller never saw the response.
	if input.SaleTransactionID != "" {
		existing, err := uc.repo.FindByTransactionID(ctx, input.UserID, input.SaleTransactionID)
		if err != nil {
			return nil, apperr.Persistence("unable to check transaction id", err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	p, err := uc.repo.FindProductForUser(ctx, input.ProductID, input.UserID)
	if err != nil {
		return nil, apperr.Persistence("unable to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	if p.ProductQuantity < input.SoldQuantity {
		return nil, apperr.InsufficientStock(p.ProductQuantity, input.SoldQuantity)
	}

	totalSalePrice := float64(input.SoldQuantity) * input.SellingPricePerUnit
	totalCost := float64(input.SoldQuantity) * p.CostPerPiece
	now := time.Now()

	transactionID := input.SaleTransactionID
	if transactionID == "" {
		transactionID = uuid.New().String()
	}

	var phone *string
	if input.CustomerPhone != "" {
		phone = &input.CustomerPhone
	}

	s := &model.Sale{
		ID:                uuid.New().String(),
		ProductID:         p.ID,
		WorkshopID:        p.WorkshopID,
		CustomerName:      strings.TrimSpace(input.CustomerName),
		CustomerPhone:     phone,
		SoldQuantity:      input.SoldQuantity,
		SellingPricePiece: input.SellingPricePerUnit,
		CostPricePiece:    p.CostPerPiece,
		TotalSalePrice:    totalSalePrice,
		TotalCost:         totalCost,
		Profit:            totalSalePrice - totalCost,
		SaleTransactionID: transactionID,
		SaleDate:          now,
		CreatedAt:         now,
	}

	if err := uc.repo.CreateWithStockDeduction(ctx, s); err != nil {
		if apperr.KindOf(err) != apperr.KindUnknown {
			return nil, err
		}
		// Two replays of the same transaction id can race past the check
		// above; the unique constraint catches the loser.
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "unique constraint") {
			existing, lookupErr := uc.repo.FindByTransactionID(ctx, input.UserID, transactionID)
			if lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, apperr.Persistence("unable to record sale", err)
	}

	go uc.publishSaleRecorded(context.Background(), s)
	go uc.invalidateReportCache(context.Background(), input.UserID)

	return s, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, userID, workshopID string) ([]model.Sale, error) {
	sales, err := uc.repo.FindAllByUser(ctx, userID, workshopID)
	if err != nil {
		return nil, apperr.Persistence("unable to list sales", err)
	}
	return sales, nil
}

func (uc *saleUseCase) publishSaleRecorded(ctx context.Context, s *model.Sale) {
	if uc.publisher == nil {
		return
	}

	evt := event.SaleRecorded{
		EventID:   uuid.New().String(),
		EventType: event.TypeSaleRecorded,
		Payload: event.SalePayload{
			SaleID:            s.ID,
			SaleTransactionID: s.SaleTransactionID,
			ProductID:         s.ProductID,
			WorkshopID:        s.WorkshopID,
			SoldQuantity:      s.SoldQuantity,
			TotalSalePrice:    s.TotalSalePrice,
			Profit:            s.Profit,
		},
		Timestamp: time.Now(),
	}

	value, err := json.Marshal(evt)
	if err != nil {
		uc.logger.Error("failed to marshal sale event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, s.ProductID, value); err != nil {
		uc.logger.Error("failed to publish sale event",
			zap.String("sale_id", s.ID),
			zap.Error(err),
		)
	}
}

func (uc *saleUseCase) invalidateReportCache(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("reports:*:%s", userID)
	keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func validate(input *dto.RecordSaleInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return apperr.Validation("customer_name is required")
	}
	if input.ProductID == "" {
		return apperr.Validation("product_id is required")
	}
	if input.SoldQuantity <= 0 {
		return apperr.Validation("sold_quantity must be a positive integer")
	}
	if input.SellingPricePerUnit < 0 {
		return apperr.Validation("selling_price_piece must not be negative")
	}
	return nil
}
