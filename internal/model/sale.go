package model

import "time"

// Sale is an immutable record of units sold from one product. Unit prices are
// captured at the time of sale; later product edits do not alter them.
type Sale struct {
	ID                string    `db:"id" json:"id"`
	ProductID         string    `db:"product_id" json:"product_id"`
	WorkshopID        string    `db:"workshop_id" json:"workshop_id"`
	CustomerName      string    `db:"customer_name" json:"customer_name"`
	CustomerPhone     *string   `db:"customer_phone" json:"customer_phone"` // Nullable
	SoldQuantity      int64     `db:"sold_quantity" json:"sold_quantity"`
	SellingPricePiece float64   `db:"selling_price_piece" json:"selling_price_piece"`
	CostPricePiece    float64   `db:"cost_price_piece" json:"cost_price_piece"`
	TotalSalePrice    float64   `db:"total_sale_price" json:"total_sale_price"`
	TotalCost         float64   `db:"total_cost" json:"total_cost"`
	Profit            float64   `db:"profit" json:"profit"`
	SaleTransactionID string    `db:"sale_transaction_id" json:"sale_transaction_id"`
	SaleDate          time.Time `db:"sale_date" json:"sale_date"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// SaleDetail is a sale joined with product and workshop names for reporting.
type SaleDetail struct {
	Sale
	ProductName  string  `db:"product_name" json:"product_name"`
	ItemNo       *string `db:"item_no" json:"item_no"`
	WorkshopName string  `db:"workshop_name" json:"workshop_name"`
}
