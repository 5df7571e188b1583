package pos

import (
	"context"

	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera de atomicidad de la venta:
// si fn retorna error se hace rollback y ni la venta ni ningún descuento
// de stock quedan visibles.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de una venta persistida.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, patient *entity.Patient,
		cashier *entity.User, lines []ReceiptLine) ([]byte, error)
}

// ReceiptLine línea enriquecida con datos del producto para el comprobante.
type ReceiptLine struct {
	Line        *entity.SaleLine
	ProductName string
	ProductSKU  string
}
