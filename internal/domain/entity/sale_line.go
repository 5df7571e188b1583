package entity

import "github.com/shopspring/decimal"

// SaleLine representa una línea de una venta POS.
// Subtotal = Quantity × UnitPrice es derivado; nunca lo fija el cliente.
// LineNo conserva el orden de envío de las líneas.
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	LineNo    int
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
