package event

import "time"

const TypeSaleRecorded = "SaleRecorded"

// SaleRecorded is published to the sales topic after a sale has committed.
type SaleRecorded struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   SalePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SalePayload struct {
	SaleID            string  `json:"sale_id"`
	SaleTransactionID string  `json:"sale_transaction_id"`
	ProductID         string  `json:"product_id"`
	WorkshopID        string  `json:"workshop_id"`
	SoldQuantity      int64   `json:"sold_quantity"`
	TotalSalePrice    float64 `json:"total_sale_price"`
	Profit            float64 `json:"profit"`
}
