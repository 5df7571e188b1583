package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
	dompos "github.com/jhoicas/hospital-pos-api/internal/domain/pos"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// SaleUseCase orquesta la creación de ventas POS: valida líneas contra
// stock vivo, resuelve precios, calcula totales y descuenta inventario en
// una sola transacción. Una invocación termina COMMITTED (todo persistido)
// o REJECTED (ningún efecto), nunca a medias.
type SaleUseCase struct {
	txRunner    SaleTxRunner
	productRepo repository.ProductRepository
	patientRepo repository.PatientRepository
	saleRepo    repository.SaleRepository
	log         zerolog.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner SaleTxRunner,
	productRepo repository.ProductRepository,
	patientRepo repository.PatientRepository,
	saleRepo repository.SaleRepository,
	log zerolog.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		patientRepo: patientRepo,
		saleRepo:    saleRepo,
		log:         log,
	}
}

// CreateSale crea una venta con sus líneas y descuenta el stock de cada
// producto, todo o nada. cashierID viene de la identidad autenticada del
// caller, nunca del payload.
//
// Pasos: (1) rechazar venta vacía y descuento negativo; (2) resolver el
// paciente (centinela walk-in si no viene); (3) validar cada línea fuera
// de la tx (lectura, sin mutación); (4) dentro de la tx, re-verificar
// stock bajo bloqueo de fila, descontar y persistir cabecera + líneas.
// La primera falla aborta la operación completa sin efectos.
func (uc *SaleUseCase) CreateSale(ctx context.Context, cashierID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if cashierID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidDiscount
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	// Paciente: centinela walk-in cuando no se asocia ninguno.
	patientID := in.PatientID
	if patientID == "" {
		patientID = entity.WalkInPatientID
	} else {
		patient, err := uc.patientRepo.GetByID(patientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, domain.ErrInvalidPatient
		}
	}

	// Validación de todas las líneas antes de mutar nada (solo lectura).
	// La verificación definitiva de stock se repite dentro de la tx con
	// la fila bloqueada; esta pasada rechaza rápido input incorregible.
	lines := make([]*entity.SaleLine, 0, len(in.Items))
	for i, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NewLineError(i, item.ProductID, domain.ErrProductNotFound)
		}
		line, err := dompos.BuildLine(i, product, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	total, err := dompos.TotalAmount(lines, in.Discount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Date:          now,
		PatientID:     patientID,
		CashierID:     cashierID,
		Status:        entity.SaleStatusPending,
		PaymentMethod: in.PaymentMethod,
		Discount:      in.Discount,
		TotalAmount:   total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Commit: descuento de stock + cabecera + líneas en UNA transacción.
	// SELECT FOR UPDATE por producto serializa ventas concurrentes sobre
	// el mismo SKU: de dos ventas que juntas sobregiran, exactamente una
	// falla con ErrInsufficientStock y la otra confirma.
	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		for i, line := range lines {
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.NewLineError(i, line.ProductID, domain.ErrProductNotFound)
			}
			if product.StockLevel < line.Quantity {
				return domain.NewLineError(i, line.ProductID, domain.ErrInsufficientStock)
			}
			if err := productRepo.UpdateStock(line.ProductID, product.StockLevel-line.Quantity); err != nil {
				return err
			}
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range lines {
			line.ID = uuid.New().String()
			line.SaleID = sale.ID
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("cashier_id", cashierID).
		Int("lines", len(lines)).
		Str("total", total.StringFixed(2)).
		Msg("venta creada")

	return toSaleResponse(sale, lines), nil
}

// GetSale obtiene una venta por ID con sus líneas en orden de envío.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// ListSales lista ventas con paginación (sin líneas).
func (uc *SaleUseCase) ListSales(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(sale *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		Date:          sale.Date.Format(time.RFC3339),
		PatientID:     sale.PatientID,
		CashierID:     sale.CashierID,
		Status:        sale.Status,
		PaymentMethod: sale.PaymentMethod,
		Discount:      sale.Discount,
		TotalAmount:   sale.TotalAmount,
		Lines:         make([]dto.SaleLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return resp
}
