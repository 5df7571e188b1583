package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID   string          `json:"category_id" validate:"required,uuid"`
	SKU          string          `json:"sku" validate:"required,min=1,max=50"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	StockLevel   int64           `json:"stock_level" validate:"min=0"`
	ReorderPoint int64           `json:"reorder_point" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
// StockLevel no va aquí: el stock solo cambia vía ventas o ajuste explícito.
type UpdateProductRequest struct {
	CategoryID   *string          `json:"category_id"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	ReorderPoint *int64           `json:"reorder_point"`
	IsActive     *bool            `json:"is_active"`
}

// AdjustStockRequest entrada para PATCH /api/products/:id/stock.
// Delta positivo repone, negativo descuenta (nunca por debajo de cero).
type AdjustStockRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	StockLevel   int64           `json:"stock_level"`
	ReorderPoint int64           `json:"reorder_point"`
	NeedsReorder bool            `json:"needs_reorder"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
