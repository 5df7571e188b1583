package dto

import "github.com/shopspring/decimal"

// SaleLineRequest línea solicitada en POST /api/sales.
// UnitPrice es opcional: si va nulo se usa el precio vigente del catálogo.
type SaleLineRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateSaleRequest body para POST /api/sales. El orden de Items se
// conserva en las líneas persistidas. El cajero NUNCA viene en el body:
// sale del token del operador autenticado.
type CreateSaleRequest struct {
	Items         []SaleLineRequest `json:"items" validate:"required,min=1,dive"`
	Discount      decimal.Decimal   `json:"discount,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	PatientID     string            `json:"patient_id,omitempty"` // vacío = venta de mostrador (walk-in)
}

// UpdateSaleRequest body para PATCH /api/sales/:id. Solo status y
// payment_method son modificables post-creación; cualquier otro campo
// presente en el body se rechaza.
type UpdateSaleRequest struct {
	Status        *string `json:"status"`
	PaymentMethod *string `json:"payment_method"`
}

// SaleLineResponse línea persistida en respuestas.
type SaleLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completa para POST /api/sales y GET /api/sales/:id.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	PatientID     string             `json:"patient_id"`
	CashierID     string             `json:"cashier_id"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Discount      decimal.Decimal    `json:"discount"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Lines         []SaleLineResponse `json:"lines"`
}

// SaleListResponse lista paginada de ventas (sin líneas).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
