package pos

import (
	"context"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
)

// UpdateSale actualiza únicamente status y payment_method de una venta
// existente. Líneas, totales, descuento y cajero son inmutables por esta
// vía; el handler rechaza cualquier otro campo presente en el body.
func (uc *SaleUseCase) UpdateSale(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	status := sale.Status
	if in.Status != nil {
		if !entity.ValidSaleStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		status = *in.Status
	}
	paymentMethod := sale.PaymentMethod
	if in.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, domain.ErrInvalidInput
		}
		paymentMethod = *in.PaymentMethod
	}

	if err := uc.saleRepo.UpdateStatus(id, status, paymentMethod); err != nil {
		return nil, err
	}
	sale.Status = status
	sale.PaymentMethod = paymentMethod

	lines, err := uc.saleRepo.GetLinesBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}
