package handler

import (
	"net/http"

	"github.com/razasalaar/workshop-manager/internal/auth"
	"github.com/razasalaar/workshop-manager/internal/pkg/httpx"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/report"
	"github.com/razasalaar/workshop-manager/internal/report/dto"
)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: log}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.DashboardStats(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) Profit(w http.ResponseWriter, r *http.Request) {
	summary, err := h.uc.ProfitSummary(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	filters := &dto.SalesReportFilters{
		UserID:    auth.UserID(r.Context()),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	rows, err := h.uc.SalesReport(r.Context(), filters)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}
