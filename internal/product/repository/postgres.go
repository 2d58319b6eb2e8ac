package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, workshop_id, product_name, item_no, product_quantity,
            cost_per_piece, sell_price_per_piece, total_cost,
            date_added, created_at, updated_at
        )
        VALUES (
            :id, :workshop_id, :product_name, :item_no, :product_quantity,
            :cost_per_piece, :sell_price_per_piece, :total_cost,
            :date_added, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindByIDForUser(ctx context.Context, id, userID string) (*model.Product, error) {
	var product model.Product
	query := `
        SELECT p.* FROM products p
        JOIN workshops w ON w.id = p.workshop_id
        WHERE p.id = $1 AND w.user_id = $2
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &product, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	conditions := []string{"w.user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.WorkshopID != "" {
		conditions = append(conditions, "p.workshop_id = :workshop_id")
		args["workshop_id"] = f.WorkshopID
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(p.product_name ILIKE :search OR p.item_no ILIKE :search)")
		args["search"] = "%" + escapeLike(f.SearchQuery) + "%"
	}

	query := `
        SELECT p.* FROM products p
        JOIN workshops w ON w.id = p.workshop_id
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY p.created_at DESC
    `

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	products := []model.Product{}
	err = nstmt.SelectContext(ctx, &products, args)
	return products, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes pattern metacharacters so a search for "100%" does
// not match every "100".
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	// Fixed column list; callers cannot steer which columns get written.
	query := `
        UPDATE products
        SET product_name = :product_name,
            item_no = :item_no,
            product_quantity = :product_quantity,
            cost_per_piece = :cost_per_piece,
            sell_price_per_piece = :sell_price_per_piece,
            total_cost = :total_cost,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *PGRepository) CountSales(ctx context.Context, productID string) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM sales WHERE product_id = $1`, productID)
	return count, err
}
