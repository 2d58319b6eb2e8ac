package dto

type CreateProductInput struct {
	UserID            string
	WorkshopID        string
	ProductName       string
	ItemNo            string
	ProductQuantity   int64
	CostPerPiece      float64
	SellPricePerPiece float64
}

// UpdateProductInput carries the full set of editable columns. Derived values
// (total_cost) are never accepted from the caller.
type UpdateProductInput struct {
	ID                string
	UserID            string
	ProductName       string
	ItemNo            string
	ProductQuantity   int64
	CostPerPiece      float64
	SellPricePerPiece float64
}
