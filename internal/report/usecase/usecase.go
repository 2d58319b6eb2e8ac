package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/cache"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/report"
	"github.com/razasalaar/workshop-manager/internal/report/dto"
)

const cacheTTL = 5 * time.Minute

type reportUseCase struct {
	repo   report.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewReportUseCase(repo report.Repository, cache *cache.RedisClient, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *reportUseCase) DashboardStats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	cacheKey := fmt.Sprintf("reports:dashboard:%s", userID)

	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var stats model.DashboardStats
			if err := json.Unmarshal([]byte(val), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := uc.repo.DashboardStats(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("unable to compute dashboard stats", err)
	}

	uc.setCache(ctx, cacheKey, stats)
	return stats, nil
}

func (uc *reportUseCase) ProfitSummary(ctx context.Context, userID string) ([]model.ProfitSummary, error) {
	cacheKey := fmt.Sprintf("reports:profit:%s", userID)

	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var summary []model.ProfitSummary
			if err := json.Unmarshal([]byte(val), &summary); err == nil {
				return summary, nil
			}
		}
	}

	summary, err := uc.repo.ProfitSummary(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("unable to compute profit summary", err)
	}

	uc.setCache(ctx, cacheKey, summary)
	return summary, nil
}

func (uc *reportUseCase) SalesReport(ctx context.Context, f *dto.SalesReportFilters) ([]model.SaleDetail, error) {
	if err := validateDate(f.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate(f.EndDate); err != nil {
		return nil, err
	}

	rows, err := uc.repo.SalesReport(ctx, f)
	if err != nil {
		return nil, apperr.Persistence("unable to build sales report", err)
	}
	return rows, nil
}

func (uc *reportUseCase) setCache(ctx context.Context, key string, value interface{}) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := uc.cache.Client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		uc.logger.Warn("failed to cache report", zap.String("key", key), zap.Error(err))
	}
}

func validateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return apperr.Validation("dates must be in YYYY-MM-DD format")
	}
	return nil
}
