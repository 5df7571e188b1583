package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
)

// TotalAmount suma los subtotales de las líneas validadas y aplica el
// descuento: total = max(Σ subtotal − descuento, 0). El total nunca es
// negativo por grande que sea el descuento.
func TotalAmount(lines []*entity.SaleLine, discount decimal.Decimal) (decimal.Decimal, error) {
	if len(lines) == 0 {
		return decimal.Zero, domain.ErrEmptySale
	}
	if discount.IsNegative() {
		return decimal.Zero, domain.ErrInvalidDiscount
	}
	raw := decimal.Zero
	for _, line := range lines {
		raw = raw.Add(line.Subtotal)
	}
	total := raw.Sub(discount)
	if total.IsNegative() {
		return decimal.Zero, nil
	}
	return total, nil
}
