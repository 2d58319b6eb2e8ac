package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/razasalaar/workshop-manager/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, w *model.Workshop) error {
	query := `
        INSERT INTO workshops (id, workshop_name, user_id, created_at, updated_at)
        VALUES (:id, :workshop_name, :user_id, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, w)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Workshop, error) {
	var w model.Workshop
	query := `SELECT * FROM workshops WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &w, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *PGRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Workshop, error) {
	workshops := []model.Workshop{}
	query := `SELECT * FROM workshops WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.DB.SelectContext(ctx, &workshops, query, userID)
	return workshops, err
}

func (r *PGRepository) Update(ctx context.Context, w *model.Workshop) error {
	query := `
        UPDATE workshops
        SET workshop_name = :workshop_name,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, w)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	// Products and sales go with the workshop via ON DELETE CASCADE.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM workshops WHERE id = $1`, id)
	return err
}
