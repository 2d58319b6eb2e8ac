package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/razasalaar/workshop-manager/internal/model"
	"github.com/razasalaar/workshop-manager/internal/report/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) DashboardStats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	query := `
        SELECT
            (SELECT COUNT(*) FROM products p
                JOIN workshops w ON w.id = p.workshop_id
                WHERE w.user_id = $1) AS total_products,
            COUNT(s.id) AS total_sales,
            COALESCE(SUM(s.total_sale_price), 0) AS total_revenue,
            COALESCE(SUM(s.profit), 0) AS total_profit
        FROM sales s
        JOIN workshops w ON w.id = s.workshop_id
        WHERE w.user_id = $1
    `
	err := r.DB.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *PGRepository) ProfitSummary(ctx context.Context, userID string) ([]model.ProfitSummary, error) {
	summary := []model.ProfitSummary{}
	query := `
        SELECT ps.* FROM profit_summary ps
        JOIN workshops w ON w.id = ps.workshop_id
        WHERE w.user_id = $1
        ORDER BY ps.total_profit DESC
    `
	err := r.DB.SelectContext(ctx, &summary, query, userID)
	return summary, err
}

func (r *PGRepository) SalesReport(ctx context.Context, f *dto.SalesReportFilters) ([]model.SaleDetail, error) {
	query := `
        SELECT
            s.*,
            p.product_name,
            p.item_no,
            w.workshop_name
        FROM sales s
        JOIN products p ON p.id = s.product_id
        JOIN workshops w ON w.id = s.workshop_id
        WHERE w.user_id = $1
    `
	args := []interface{}{f.UserID}

	if f.StartDate != "" {
		args = append(args, f.StartDate)
		query += fmt.Sprintf(" AND s.sale_date >= $%d", len(args))
	}
	if f.EndDate != "" {
		args = append(args, f.EndDate)
		query += fmt.Sprintf(" AND s.sale_date <= $%d", len(args))
	}
	query += " ORDER BY s.sale_date DESC"

	rows := []model.SaleDetail{}
	err := r.DB.SelectContext(ctx, &rows, query, args...)
	return rows, err
}
