package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/razasalaar/workshop-manager/internal/apperr"
	"github.com/razasalaar/workshop-manager/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindProductForUser(ctx context.Context, productID, userID string) (*model.Product, error) {
	var product model.Product
	query := `
        SELECT p.* FROM products p
        JOIN workshops w ON w.id = p.workshop_id
        WHERE p.id = $1 AND w.user_id = $2
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &product, query, productID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) CreateWithStockDeduction(ctx context.Context, s *model.Sale) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The guarded decrement is the serialization point: of two concurrent
	// sales racing for the last units, only one can match quantity >= N.
	var costPerPiece float64
	err = tx.GetContext(ctx, &costPerPiece, `
        UPDATE products
        SET product_quantity = product_quantity - $1,
            total_cost = (product_quantity - $1) * cost_per_piece,
            updated_at = NOW()
        WHERE id = $2 AND product_quantity >= $1
        RETURNING cost_per_piece
    `, s.SoldQuantity, s.ProductID)
	if errors.Is(err, sql.ErrNoRows) {
		var available int64
		err := tx.GetContext(ctx, &available, `SELECT product_quantity FROM products WHERE id = $1`, s.ProductID)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("product not found")
		}
		if err != nil {
			return err
		}
		return apperr.InsufficientStock(available, s.SoldQuantity)
	}
	if err != nil {
		return err
	}

	// Cost is snapshotted under the row lock the decrement holds, so the
	// sale cannot disagree with a cost edit that lands mid-flight.
	s.CostPricePiece = costPerPiece
	s.TotalCost = float64(s.SoldQuantity) * costPerPiece
	s.Profit = s.TotalSalePrice - s.TotalCost

	insertQuery := `
        INSERT INTO sales (
            id, product_id, workshop_id, customer_name, customer_phone,
            sold_quantity, selling_price_piece, cost_price_piece,
            total_sale_price, total_cost, profit,
            sale_transaction_id, sale_date, created_at
        )
        VALUES (
            :id, :product_id, :workshop_id, :customer_name, :customer_phone,
            :sold_quantity, :selling_price_piece, :cost_price_piece,
            :total_sale_price, :total_cost, :profit,
            :sale_transaction_id, :sale_date, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertQuery, s); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindAllByUser(ctx context.Context, userID, workshopID string) ([]model.Sale, error) {
	sales := []model.Sale{}
	query := `
        SELECT s.* FROM sales s
        JOIN workshops w ON w.id = s.workshop_id
        WHERE w.user_id = $1
    `
	args := []interface{}{userID}
	if workshopID != "" {
		query += ` AND s.workshop_id = $2`
		args = append(args, workshopID)
	}
	query += ` ORDER BY s.sale_date DESC`

	err := r.DB.SelectContext(ctx, &sales, query, args...)
	return sales, err
}

func (r *PGRepository) FindByTransactionID(ctx context.Context, userID, transactionID string) (*model.Sale, error) {
	var s model.Sale
	query := `
        SELECT s.* FROM sales s
        JOIN workshops w ON w.id = s.workshop_id
        WHERE s.sale_transaction_id = $1 AND w.user_id = $2
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &s, query, transactionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
