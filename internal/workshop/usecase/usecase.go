package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/cache"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/workshop"
	"github.com/razasalaar/workshop-manager/internal/workshop/dto"
)

type workshopUseCase struct {
	repo   workshop.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewWorkshopUseCase(repo workshop.Repository, cache *cache.RedisClient, log logger.ZapLogger) workshop.UseCase {
	return &workshopUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *workshopUseCase) CreateWorkshop(ctx context.Context, input *dto.CreateWorkshopInput) (*model.Workshop, error) {
	if strings.TrimSpace(input.WorkshopName) == "" {
		return nil, apperr.Validation("workshop_name is required")
	}

	now := time.Now()
	w := &model.Workshop{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		WorkshopName: strings.TrimSpace(input.WorkshopName),
		UserID:       input.UserID,
	}

	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, apperr.Persistence("unable to create workshop", err)
	}
	return w, nil
}

func (uc *workshopUseCase) ListWorkshops(ctx context.Context, userID string) ([]model.Workshop, error) {
	workshops, err := uc.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("unable to list workshops", err)
	}
	return workshops, nil
}

func (uc *workshopUseCase) RenameWorkshop(ctx context.Context, input *dto.RenameWorkshopInput) (*model.Workshop, error) {
	if strings.TrimSpace(input.WorkshopName) == "" {
		return nil, apperr.Validation("workshop_name is required")
	}

	w, err := uc.owned(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	w.WorkshopName = strings.TrimSpace(input.WorkshopName)
	w.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, apperr.Persistence("unable to update workshop", err)
	}
	return w, nil
}

func (uc *workshopUseCase) DeleteWorkshop(ctx context.Context, userID, id string) error {
	if _, err := uc.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Persistence("unable to delete workshop", err)
	}

	// The cascade removes sales, so cached report figures are stale now.
	go uc.invalidateReportCache(context.Background(), userID)
	return nil
}

// owned loads the workshop and hides its existence from other users.
func (uc *workshopUseCase) owned(ctx context.Context, userID, id string) (*model.Workshop, error) {
	w, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("unable to load workshop", err)
	}
	if w == nil || w.UserID != userID {
		return nil, apperr.NotFound("workshop not found")
	}
	return w, nil
}

func (uc *workshopUseCase) invalidateReportCache(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("reports:*:%s", userID)
	keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	} else if err != nil {
		uc.logger.Warn("failed to invalidate report cache", zap.Error(err))
	}
}
