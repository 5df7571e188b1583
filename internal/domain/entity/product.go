package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo hospitalario
// (farmacia, insumos, equipos). StockLevel nunca es negativo; el descuento
// de stock se hace únicamente dentro de la transacción de venta.
type Product struct {
	ID           string
	CategoryID   string
	SKU          string // código único
	Name         string
	Description  string
	UnitPrice    decimal.Decimal // precio de venta, siempre > 0
	StockLevel   int64           // unidades disponibles
	ReorderPoint int64           // umbral para señalar reabastecimiento
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NeedsReorder indica si el stock está en o por debajo del punto de reorden.
func (p *Product) NeedsReorder() bool {
	return p.StockLevel <= p.ReorderPoint
}
