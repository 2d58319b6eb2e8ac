package report

import (
	"context"

	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/report/dto"
)

type UseCase interface {
	DashboardStats(ctx context.Context, userID string) (*model.DashboardStats, error)
	ProfitSummary(ctx context.Context, userID string) ([]model.ProfitSummary, error)
	SalesReport(ctx context.Context, f *dto.SalesReportFilters) ([]model.SaleDetail, error)
}
