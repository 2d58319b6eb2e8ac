package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/report/dto"
)

type fakeReportRepo struct {
	stats        *model.DashboardStats
	summary      []model.ProfitSummary
	salesReport  []model.SaleDetail
	lastFilters  *dto.SalesReportFilters
	statsCalls   int
	summaryCalls int
}

func (f *fakeReportRepo) DashboardStats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	f.statsCalls++
	return f.stats, nil
}

func (f *fakeReportRepo) ProfitSummary(ctx context.Context, userID string) ([]model.ProfitSummary, error) {
	f.summaryCalls++
	return f.summary, nil
}

func (f *fakeReportRepo) SalesReport(ctx context.Context, filters *dto.SalesReportFilters) ([]model.SaleDetail, error) {
	f.lastFilters = filters
	return f.salesReport, nil
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{
		Level:             "error",
		Encoding:          "console",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeReportRepo{stats: &model.DashboardStats{
		TotalProducts: 3,
		TotalSales:    7,
		TotalRevenue:  210,
		TotalProfit:   90,
	}}
	uc := NewReportUseCase(repo, nil, testLogger())

	stats, err := uc.DashboardStats(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalProducts)
	require.Equal(t, float64(90), stats.TotalProfit)
	require.Equal(t, 1, repo.statsCalls)
}

func TestProfitSummary(t *testing.T) {
	repo := &fakeReportRepo{summary: []model.ProfitSummary{
		{ProductID: "prod-1", TotalProfit: 50},
		{ProductID: "prod-2", TotalProfit: 10},
	}}
	uc := NewReportUseCase(repo, nil, testLogger())

	summary, err := uc.ProfitSummary(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	require.Equal(t, 1, repo.summaryCalls)
}

func TestSalesReportDateValidation(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUseCase(repo, nil, testLogger())

	_, err := uc.SalesReport(context.Background(), &dto.SalesReportFilters{
		UserID:    "user-1",
		StartDate: "01/02/2026",
	})
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = uc.SalesReport(context.Background(), &dto.SalesReportFilters{
		UserID:  "user-1",
		EndDate: "yesterday",
	})
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSalesReportPassesFilters(t *testing.T) {
	repo := &fakeReportRepo{salesReport: []model.SaleDetail{{ProductName: "Brake Pads"}}}
	uc := NewReportUseCase(repo, nil, testLogger())

	rows, err := uc.SalesReport(context.Background(), &dto.SalesReportFilters{
		UserID:    "user-1",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "2026-01-01", repo.lastFilters.StartDate)
	require.Equal(t, "2026-01-31", repo.lastFilters.EndDate)
}
