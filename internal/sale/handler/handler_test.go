package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/sale/dto"
)

type stubSaleUseCase struct {
	recordFn func(ctx context.Context, in *dto.RecordSaleInput) (*model.Sale, error)
	listFn   func(ctx context.Context, userID, workshopID string) ([]model.Sale, error)
}

func (s *stubSaleUseCase) RecordSale(ctx context.Context, in *dto.RecordSaleInput) (*model.Sale, error) {
	return s.recordFn(ctx, in)
}

func (s *stubSaleUseCase) ListSales(ctx context.Context, userID, workshopID string) ([]model.Sale, error) {
	return s.listFn(ctx, userID, workshopID)
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{
		Level:             "error",
		Encoding:          "console",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
}

func postSale(t *testing.T, h *SaleHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString(body))
	req = req.WithContext(auth.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	h.Record(rec, req)
	return rec
}

func TestRecordReturnsCreated(t *testing.T) {
	uc := &stubSaleUseCase{
		recordFn: func(ctx context.Context, in *dto.RecordSaleInput) (*model.Sale, error) {
			require.Equal(t, "user-1", in.UserID)
			require.Equal(t, "prod-1", in.ProductID)
			require.Equal(t, int64(3), in.SoldQuantity)
			return &model.Sale{ID: "sale-1", SoldQuantity: 3, Profit: 9}, nil
		},
	}
	h := NewSaleHandler(uc, testLogger())

	rec := postSale(t, h, `{"product_id":"prod-1","customer_name":"Ali","sold_quantity":3,"selling_price_piece":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "sale-1", got.ID)
	require.Equal(t, float64(9), got.Profit)
}

func TestRecordInsufficientStockConflict(t *testing.T) {
	uc := &stubSaleUseCase{
		recordFn: func(ctx context.Context, in *dto.RecordSaleInput) (*model.Sale, error) {
			return nil, apperr.InsufficientStock(2, 5)
		},
	}
	h := NewSaleHandler(uc, testLogger())

	rec := postSale(t, h, `{"product_id":"prod-1","customer_name":"Ali","sold_quantity":5,"selling_price_piece":5}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Details struct {
			Available int64 `json:"available"`
			Requested int64 `json:"requested"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "InsufficientStock", body.Error)
	require.Equal(t, int64(2), body.Details.Available)
	require.Equal(t, int64(5), body.Details.Requested)
}

func TestRecordProductNotFound(t *testing.T) {
	uc := &stubSaleUseCase{
		recordFn: func(ctx context.Context, in *dto.RecordSaleInput) (*model.Sale, error) {
			return nil, apperr.NotFound("product not found")
		},
	}
	h := NewSaleHandler(uc, testLogger())

	rec := postSale(t, h, `{"product_id":"missing","customer_name":"Ali","sold_quantity":1,"selling_price_piece":5}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordValidationError(t *testing.T) {
	uc := &stubSaleUseCase{
		recordFn: func(ctx context.Context, in *dto.RecordSaleInput) (*model.Sale, error) {
			return nil, apperr.Validation("sold_quantity must be a positive integer")
		},
	}
	h := NewSaleHandler(uc, testLogger())

	rec := postSale(t, h, `{"product_id":"prod-1","customer_name":"Ali","sold_quantity":0,"selling_price_piece":5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordMalformedBody(t *testing.T) {
	h := NewSaleHandler(&stubSaleUseCase{}, testLogger())

	rec := postSale(t, h, `{"product_id":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordRejectsUnknownFields(t *testing.T) {
	h := NewSaleHandler(&stubSaleUseCase{}, testLogger())

	rec := postSale(t, h, `{"product_id":"prod-1","customer_name":"Ali","sold_quantity":1,"selling_price_piece":5,"profit":9999}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSales(t *testing.T) {
	uc := &stubSaleUseCase{
		listFn: func(ctx context.Context, userID, workshopID string) ([]model.Sale, error) {
			require.Equal(t, "user-1", userID)
			require.Equal(t, "ws-1", workshopID)
			return []model.Sale{{ID: "sale-1"}, {ID: "sale-2"}}, nil
		},
	}
	h := NewSaleHandler(uc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/sales?workshop_id=ws-1", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
}
