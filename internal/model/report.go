package model

type DashboardStats struct {
	TotalProducts int64   `db:"total_products" json:"total_products"`
	TotalSales    int64   `db:"total_sales" json:"total_sales"`
	TotalRevenue  float64 `db:"total_revenue" json:"total_revenue"`
	TotalProfit   float64 `db:"total_profit" json:"total_profit"`
}

// ProfitSummary is one row of the profit_summary view: per-product aggregates
// across all recorded sales plus the remaining stock.
type ProfitSummary struct {
	ProductID         string  `db:"product_id" json:"product_id"`
	ItemNo            *string `db:"item_no" json:"item_no"`
	ProductName       string  `db:"product_name" json:"product_name"`
	SellPricePerPiece float64 `db:"sell_price_per_piece" json:"sell_price_per_piece"`
	RemainingStock    int64   `db:"remaining_stock" json:"remaining_stock"`
	WorkshopID        string  `db:"workshop_id" json:"workshop_id"`
	WorkshopName      string  `db:"workshop_name" json:"workshop_name"`
	TotalQuantitySold int64   `db:"total_quantity_sold" json:"total_quantity_sold"`
	TotalSalesAmount  float64 `db:"total_sales_amount" json:"total_sales_amount"`
	TotalCostAmount   float64 `db:"total_cost_amount" json:"total_cost_amount"`
	TotalProfit       float64 `db:"total_profit" json:"total_profit"`
}
