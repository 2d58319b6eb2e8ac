package dto

type RecordSaleInput struct {
	UserID              string
	ProductID           string
	CustomerName        string
	CustomerPhone       string
	SoldQuantity        int64
	SellingPricePerUnit float64

	// SaleTransactionID is optional. Clients retrying after a timeout supply
	// the id of the first attempt; a sale already recorded under it is
	// returned as-is instead of being recorded twice.
	SaleTransactionID string
}
