package pos

import (
	"context"

	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	generator   ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// GenerateReceipt arma los datos de la venta (líneas enriquecidas con
// nombre y SKU del producto) y delega el render al generador PDF.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(saleID)
	if err != nil {
		return nil, err
	}

	receiptLines := make([]ReceiptLine, 0, len(lines))
	for _, line := range lines {
		rl := ReceiptLine{Line: line}
		if product, err := uc.productRepo.GetByID(line.ProductID); err == nil && product != nil {
			rl.ProductName = product.Name
			rl.ProductSKU = product.SKU
		}
		receiptLines = append(receiptLines, rl)
	}

	patient, _ := uc.patientRepo.GetByID(sale.PatientID)
	cashier, _ := uc.userRepo.GetByID(sale.CashierID)

	return uc.generator.GenerateReceipt(ctx, sale, patient, cashier, receiptLines)
}
