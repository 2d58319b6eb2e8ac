package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/pkg/httpx"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/product"
	"github.com/razasalaar/workshop-manager/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type productRequest struct {
	WorkshopID        string  `json:"workshop_id,omitempty"`
	ProductName       string  `json:"product_name"`
	ItemNo            string  `json:"item_no"`
	ProductQuantity   int64   `json:"product_quantity"`
	CostPerPiece      float64 `json:"cost_per_piece"`
	SellPricePerPiece float64 `json:"sell_price_per_piece"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.WorkshopID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "workshop_id is required", nil)
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &dto.CreateProductInput{
		UserID:            auth.UserID(r.Context()),
		WorkshopID:        req.WorkshopID,
		ProductName:       req.ProductName,
		ItemNo:            req.ItemNo,
		ProductQuantity:   req.ProductQuantity,
		CostPerPiece:      req.CostPerPiece,
		SellPricePerPiece: req.SellPricePerPiece,
	})
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &dto.ProductFilters{
		UserID:      auth.UserID(r.Context()),
		WorkshopID:  r.URL.Query().Get("workshop_id"),
		SearchQuery: r.URL.Query().Get("query"),
	}

	products, err := h.uc.ListProducts(r.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProduct(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), &dto.UpdateProductInput{
		ID:                chi.URLParam(r, "id"),
		UserID:            auth.UserID(r.Context()),
		ProductName:       req.ProductName,
		ItemNo:            req.ItemNo,
		ProductQuantity:   req.ProductQuantity,
		CostPerPiece:      req.CostPerPiece,
		SellPricePerPiece: req.SellPricePerPiece,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteProduct(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
