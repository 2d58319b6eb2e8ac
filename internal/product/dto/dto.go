package dto

type ProductFilters struct {
	UserID      string
	WorkshopID  string
	SearchQuery string // matches product_name or item_no
}
