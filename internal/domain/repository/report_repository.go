package repository

import "github.com/shopspring/decimal"

// SalesSummary agregados de ventas para reportes.
type SalesSummary struct {
	TotalSales  int
	TotalAmount decimal.Decimal
	ByStatus    map[string]int
}

// ReportRepository define el puerto de consultas agregadas (solo lectura).
type ReportRepository interface {
	SalesSummary() (*SalesSummary, error)
}
