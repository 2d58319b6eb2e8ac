package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/pkg/logger"
	"github.com/razasalaar/workshop-manager/internal/workshop/dto"
)

type fakeWorkshopRepo struct {
	workshops map[string]*model.Workshop
}

func newFakeWorkshopRepo() *fakeWorkshopRepo {
	return &fakeWorkshopRepo{workshops: map[string]*model.Workshop{}}
}

func (f *fakeWorkshopRepo) Create(ctx context.Context, w *model.Workshop) error {
	cp := *w
	f.workshops[w.ID] = &cp
	return nil
}

func (f *fakeWorkshopRepo) FindByID(ctx context.Context, id string) (*model.Workshop, error) {
	w, ok := f.workshops[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkshopRepo) FindAllByUser(ctx context.Context, userID string) ([]model.Workshop, error) {
	out := []model.Workshop{}
	for _, w := range f.workshops {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkshopRepo) Update(ctx context.Context, w *model.Workshop) error {
	cp := *w
	f.workshops[w.ID] = &cp
	return nil
}

func (f *fakeWorkshopRepo) Delete(ctx context.Context, id string) error {
	delete(f.workshops, id)
	return nil
}

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{
		Level:             "error",
		Encoding:          "console",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
}

func TestCreateWorkshop(t *testing.T) {
	repo := newFakeWorkshopRepo()
	uc := NewWorkshopUseCase(repo, nil, testLogger())

	w, err := uc.CreateWorkshop(context.Background(), &dto.CreateWorkshopInput{
		UserID:       "user-1",
		WorkshopName: "  Main Garage  ",
	})
	require.NoError(t, err)
	require.NotEmpty(t, w.ID)
	require.Equal(t, "Main Garage", w.WorkshopName)
	require.Equal(t, "user-1", w.UserID)
}

func TestCreateWorkshopBlankName(t *testing.T) {
	uc := NewWorkshopUseCase(newFakeWorkshopRepo(), nil, testLogger())

	_, err := uc.CreateWorkshop(context.Background(), &dto.CreateWorkshopInput{
		UserID:       "user-1",
		WorkshopName: "   ",
	})
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestListWorkshopsScopedToUser(t *testing.T) {
	repo := newFakeWorkshopRepo()
	uc := NewWorkshopUseCase(repo, nil, testLogger())

	_, err := uc.CreateWorkshop(context.Background(), &dto.CreateWorkshopInput{UserID: "user-1", WorkshopName: "Mine"})
	require.NoError(t, err)
	_, err = uc.CreateWorkshop(context.Background(), &dto.CreateWorkshopInput{UserID: "user-2", WorkshopName: "Theirs"})
	require.NoError(t, err)

	got, err := uc.ListWorkshops(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Mine", got[0].WorkshopName)
}

func TestRenameWorkshop(t *testing.T) {
	repo := newFakeWorkshopRepo()
	uc := NewWorkshopUseCase(repo, nil, testLogger())

	w, err := uc.CreateWorkshop(context.Background(), &dto.CreateWorkshopInput{UserID: "user-1", WorkshopName: "Old"})
	require.NoError(t, err)

	renamed, err := uc.RenameWorkshop(context.Background(), &dto.RenameWorkshopInput{
		ID:           w.ID,
		UserID:       "user-1",
		WorkshopName: "New",
	})
	require.NoError(t, err)
	require.Equal(t, "New", renamed.WorkshopName)
}

func TestRenameForeignWorkshopHidden(t *testing.T) {
	repo := newFakeWorkshopRepo()
	uc := NewWorkshopUseCase(repo, nil, testLogger())

	w, err := uc.CreateWorkshop(context.Background(), &dto.CreateWorkshopInput{UserID: "user-1", WorkshopName: "Mine"})
	require.NoError(t, err)

	// Another user probing the id gets not-found, not forbidden.
	_, err = uc.RenameWorkshop(context.Background(), &dto.RenameWorkshopInput{
		ID:           w.ID,
		UserID:       "user-2",
		WorkshopName: "Stolen",
	})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteWorkshop(t *testing.T) {
	repo := newFakeWorkshopRepo()
	uc := NewWorkshopUseCase(repo, nil, testLogger())

	w, err := uc.CreateWorkshop(context.Background(), &dto.CreateWorkshopInput{UserID: "user-1", WorkshopName: "Mine"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteWorkshop(context.Background(), "user-1", w.ID))

	got, err := uc.ListWorkshops(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDeleteUnknownWorkshop(t *testing.T) {
	uc := NewWorkshopUseCase(newFakeWorkshopRepo(), nil, testLogger())

	err := uc.DeleteWorkshop(context.Background(), "user-1", "no-such-id")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
