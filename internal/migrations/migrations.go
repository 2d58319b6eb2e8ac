package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS workshops (
		id UUID PRIMARY KEY,
		workshop_name TEXT NOT NULL,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		workshop_id UUID NOT NULL REFERENCES workshops(id) ON DELETE CASCADE,
		product_name TEXT NOT NULL,
		item_no TEXT,
		product_quantity BIGINT NOT NULL DEFAULT 0 CHECK (product_quantity >= 0),
		cost_per_piece NUMERIC(12,2) NOT NULL DEFAULT 0,
		sell_price_per_piece NUMERIC(12,2) NOT NULL DEFAULT 0,
		total_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		date_added TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id UUID PRIMARY KEY,
		workshop_id UUID NOT NULL REFERENCES workshops(id) ON DELETE CASCADE,
		product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		customer_name TEXT NOT NULL,
		customer_phone TEXT,
		sold_quantity BIGINT NOT NULL CHECK (sold_quantity > 0),
		selling_price_piece NUMERIC(12,2) NOT NULL,
		cost_price_piece NUMERIC(12,2) NOT NULL,
		profit NUMERIC(14,2) NOT NULL,
		total_sale_price NUMERIC(14,2) NOT NULL,
		total_cost NUMERIC(14,2) NOT NULL,
		sale_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		sale_transaction_id TEXT UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workshops_user_id ON workshops(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_workshop_id ON products(workshop_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_workshop_id ON sales(workshop_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales(sale_date)`,

	`CREATE OR REPLACE VIEW profit_summary AS
		SELECT
			p.id AS product_id,
			p.product_name,
			p.item_no,
			p.sell_price_per_piece,
			p.product_quantity AS remaining_stock,
			p.workshop_id,
			w.workshop_name,
			COALESCE(SUM(s.sold_quantity), 0) AS total_quantity_sold,
			COALESCE(SUM(s.total_sale_price), 0) AS total_sales_amount,
			COALESCE(SUM(s.total_cost), 0) AS total_cost_amount,
			COALESCE(SUM(s.profit), 0) AS total_profit
		FROM products p
		JOIN workshops w ON w.id = p.workshop_id
		LEFT JOIN sales s ON s.product_id = p.id
		GROUP BY p.id, p.product_name, p.item_no, p.sell_price_per_piece,
			p.product_quantity, p.workshop_id, w.workshop_name`,
}

// Run applies the schema in order. Every statement is idempotent so the
// service can run it on each start.
func Run(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
