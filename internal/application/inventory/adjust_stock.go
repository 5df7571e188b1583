package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de
// productos ligado a ella. Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}

// AdjustStockUseCase ajusta el stock de un producto con un delta firmado
// (reposición o merma manual). El stock nunca queda negativo.
type AdjustStockUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, log zerolog.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, log: log}
}

// AdjustStock aplica el delta sobre el stock actual con la fila bloqueada.
// Devuelve el producto actualizado.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, productID string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newLevel := product.StockLevel + in.Delta
		if newLevel < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(product.ID, newLevel); err != nil {
			return err
		}
		product.StockLevel = newLevel
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", productID).
		Int64("delta", in.Delta).
		Int64("stock_level", out.StockLevel).
		Msg("stock ajustado")
	return out, nil
}
