package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
)

// ResolveUnitPrice decide el precio unitario a aplicar en una línea:
// si el caller envió un precio explícito se usa tal cual (cortesías,
// convenios con aseguradoras); si no, el precio vigente del catálogo.
// Función pura, sin efectos.
func ResolveUnitPrice(product *entity.Product, override *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return product.UnitPrice
}
