package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/pkg/httpx"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/sale"
	"github.com/razasalaar/workshop-manager/internal/sale/dto"
)

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

type recordSaleRequest struct {
	ProductID           string  `json:"product_id"`
	CustomerName        string  `json:"customer_name"`
	CustomerPhone       string  `json:"customer_phone"`
	SoldQuantity        int64   `json:"sold_quantity"`
	SellingPricePerUnit float64 `json:"selling_price_piece"`
	SaleTransactionID   string  `json:"sale_transaction_id,omitempty"`
}

func (h *SaleHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	s, err := h.uc.RecordSale(r.Context(), &dto.RecordSaleInput{
		UserID:              auth.UserID(r.Context()),
		ProductID:           req.ProductID,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		SoldQuantity:        req.SoldQuantity,
		SellingPricePerUnit: req.SellingPricePerUnit,
		SaleTransactionID:   req.SaleTransactionID,
	})
	if err != nil {
		h.logger.Error("failed to record sale",
			zap.String("product_id", req.ProductID),
			zap.Error(err),
		)
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, s)
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.uc.ListSales(r.Context(), auth.UserID(r.Context()), r.URL.Query().Get("workshop_id"))
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}
