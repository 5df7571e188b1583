package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta POS.
const (
	SaleStatusPending   = "PENDING"
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
)

// ValidSaleStatus indica si el estado es uno de los conocidos.
func ValidSaleStatus(s string) bool {
	return s == SaleStatusPending || s == SaleStatusCompleted || s == SaleStatusCancelled
}

// Métodos de pago aceptados. Vacío significa "no informado".
const (
	PaymentCash      = "CASH"
	PaymentCard      = "CARD"
	PaymentTransfer  = "TRANSFER"
	PaymentInsurance = "INSURANCE"
)

// ValidPaymentMethod indica si el método de pago es conocido (vacío es válido).
func ValidPaymentMethod(m string) bool {
	switch m {
	case "", PaymentCash, PaymentCard, PaymentTransfer, PaymentInsurance:
		return true
	}
	return false
}

// Sale representa la cabecera de una venta POS.
// TotalAmount = max(Σ subtotal de líneas − Discount, 0), calculado al crear;
// nunca se recalcula después (las líneas no se modifican post-creación).
// CashierID sale del token del operador autenticado, nunca del payload.
type Sale struct {
	ID            string
	Date          time.Time
	PatientID     string // WalkInPatientID cuando no se asocia paciente
	CashierID     string
	Status        string // PENDING, COMPLETED, CANCELLED
	PaymentMethod string // CASH, CARD, TRANSFER, INSURANCE o vacío
	Discount      decimal.Decimal
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
