package dto

import "github.com/shopspring/decimal"

// SalesSummaryResponse respuesta de GET /api/reports/sales-summary:
// totales por estado más los productos en punto de reorden.
type SalesSummaryResponse struct {
	TotalSales    int               `json:"total_sales"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	ByStatus      map[string]int    `json:"by_status"`
	ReorderNeeded []ProductResponse `json:"reorder_needed"`
}
