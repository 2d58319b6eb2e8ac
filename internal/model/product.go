package model

import "time"

type Product struct {
	BaseModel
	WorkshopID        string    `db:"workshop_id" json:"workshop_id"`
	ProductName       string    `db:"product_name" json:"product_name"`
	ItemNo            *string   `db:"item_no" json:"item_no"` // Nullable
	ProductQuantity   int64     `db:"product_quantity" json:"product_quantity"`
	CostPerPiece      float64   `db:"cost_per_piece" json:"cost_per_piece"`
	SellPricePerPiece float64   `db:"sell_price_per_piece" json:"sell_price_per_piece"`
	TotalCost         float64   `db:"total_cost" json:"total_cost"`
	DateAdded         time.Time `db:"date_added" json:"date_added"`
}
