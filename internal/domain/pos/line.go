package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
)

// BuildLine valida una línea solicitada contra el producto referenciado y,
// si pasa, construye la SaleLine con el precio resuelto y el subtotal
// calculado. No muta nada: el descuento de stock ocurre recién en la
// transacción de commit, donde la suficiencia se verifica de nuevo bajo
// bloqueo de fila.
func BuildLine(lineNo int, product *entity.Product, quantity int64, override *decimal.Decimal) (*entity.SaleLine, error) {
	if quantity <= 0 {
		return nil, domain.NewLineError(lineNo, product.ID, domain.ErrInvalidQuantity)
	}
	if product.StockLevel < quantity {
		return nil, domain.NewLineError(lineNo, product.ID, domain.ErrInsufficientStock)
	}
	unitPrice := ResolveUnitPrice(product, override)
	return &entity.SaleLine{
		ProductID: product.ID,
		LineNo:    lineNo,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(quantity)),
	}, nil
}
