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
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/cache"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/pkg/search"
	"github.com/razasalaar/workshop-manager/internal/product"
	"github.com/razasalaar/workshop-manager/internal/product/dto"
	"github.com/razasalaar/workshop-manager/internal/workshop"
)

const productIndex = "products"

type productUseCase struct {
	repo      product.Repository
	workshops workshop.Repository
	cache     *cache.RedisClient
	es        *search.Client
	logger    logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, workshops workshop.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		workshops: workshops,
		cache:     cache,
		es:        es,
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validate(input.ProductName, input.ProductQuantity, input.CostPerPiece, input.SellPricePerPiece); err != nil {
		return nil, err
	}

	ws, err := uc.workshops.FindByID(ctx, input.WorkshopID)
	if err != nil {
		return nil, apperr.Persistence("unable to load workshop", err)
	}
	if ws == nil || ws.UserID != input.UserID {
		return nil, apperr.NotFound("workshop not found")
	}

	now := time.Now()
	var itemNo *string
	if input.ItemNo != "" {
		itemNo = &input.ItemNo
	}

	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		WorkshopID:        input.WorkshopID,
		ProductName:       strings.TrimSpace(input.ProductName),
		ItemNo:            itemNo,
		ProductQuantity:   input.ProductQuantity,
		CostPerPiece:      input.CostPerPiece,
		SellPricePerPiece: input.SellPricePerPiece,
		TotalCost:         float64(input.ProductQuantity) * input.CostPerPiece,
		DateAdded:         now,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperr.Persistence("unable to create product", err)
	}

	go uc.invalidateReportCache(context.Background(), input.UserID)
	go uc.syncToSearch(context.Background(), p, input.UserID)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, userID, id string) (*model.Product, error) {
	p, err := uc.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, apperr.Persistence("unable to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	if filters.SearchQuery != "" && uc.es != nil {
		products, err := uc.searchProducts(ctx, filters)
		if err == nil {
			return products, nil
		}
		// Fall back to the database when the search cluster misbehaves.
		uc.logger.Error("search failed, falling back to DB", zap.Error(err))
	}

	products, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, apperr.Persistence("unable to list products", err)
	}
	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validate(input.ProductName, input.ProductQuantity, input.CostPerPiece, input.SellPricePerPiece); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByIDForUser(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, apperr.Persistence("unable to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}

	p.ProductName = strings.TrimSpace(input.ProductName)
	if input.ItemNo != "" {
		itemNo := input.ItemNo
		p.ItemNo = &itemNo
	} else {
		p.ItemNo = nil
	}
	p.ProductQuantity = input.ProductQuantity
	p.CostPerPiece = input.CostPerPiece
	p.SellPricePerPiece = input.SellPricePerPiece
	p.TotalCost = float64(input.ProductQuantity) * input.CostPerPiece
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperr.Persistence("unable to update product", err)
	}

	go uc.invalidateReportCache(context.Background(), input.UserID)
	go uc.syncToSearch(context.Background(), p, input.UserID)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, userID, id string) error {
	p, err := uc.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return apperr.Persistence("unable to load product", err)
	}
	if p == nil {
		return apperr.NotFound("product not found")
	}

	// Sales keep their price snapshots forever; removing the product they
	// reference is only allowed while no sale exists.
	count, err := uc.repo.CountSales(ctx, id)
	if err != nil {
		return apperr.Persistence("unable to check product sales", err)
	}
	if count > 0 {
		return apperr.Conflict("product has recorded sales and cannot be deleted")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Persistence("unable to delete product", err)
	}

	go uc.invalidateReportCache(context.Background(), userID)
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from search index", zap.Error(err))
			}
		}()
	}

	return nil
}

// searchDoc is the product as indexed for search, with the owning user
// denormalized in for tenancy filtering.
type searchDoc struct {
	model.Product
	UserID string `json:"user_id"`
}

func (uc *productUseCase) syncToSearch(ctx context.Context, p *model.Product, userID string) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"user_id": { "type": "keyword" },
				"workshop_id": { "type": "keyword" },
				"product_name": { "type": "text" },
				"item_no": { "type": "keyword" },
				"product_quantity": { "type": "long" },
				"sell_price_per_piece": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, searchDoc{Product: *p, UserID: userID}); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}

func (uc *productUseCase) searchProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	must := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
				"fields": []string{"product_name^3", "item_no"},
			},
		},
		{
			"term": map[string]interface{}{
				"user_id": filters.UserID,
			},
		},
	}
	if filters.WorkshopID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{
				"workshop_id": filters.WorkshopID,
			},
		})
	}

	res, err := uc.es.Search(ctx, productIndex, map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": must,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	return products, nil
}

func (uc *productUseCase) invalidateReportCache(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("reports:*:%s", userID)
	keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func validate(name string, quantity int64, cost, sell float64) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("product_name is required")
	}
	if quantity < 0 {
		return apperr.Validation("product_quantity must not be negative")
	}
	if cost < 0 || sell < 0 {
		return apperr.Validation("prices must not be negative")
	}
	return nil
}
