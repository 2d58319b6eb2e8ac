package dto

// SalesReportFilters narrows the report to a date range; empty bounds mean
// unbounded. Dates are YYYY-MM-DD.
type SalesReportFilters struct {
	UserID    string
	StartDate string
	EndDate   string
}
