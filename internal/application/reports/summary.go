package reports

import (
	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// reorderListLimit tope de productos en reorden incluidos en el resumen.
const reorderListLimit = 100

// SummaryUseCase genera el resumen de ventas para el panel administrativo:
// totales por estado más los productos que tocaron su punto de reorden.
type SummaryUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *SummaryUseCase {
	return &SummaryUseCase{reportRepo: reportRepo, productRepo: productRepo}
}

// SalesSummary arma el resumen de ventas y reorden.
func (uc *SummaryUseCase) SalesSummary() (*dto.SalesSummaryResponse, error) {
	summary, err := uc.reportRepo.SalesSummary()
	if err != nil {
		return nil, err
	}

	needsReorder := true
	low, err := uc.productRepo.List(repository.ProductFilter{NeedsReorder: &needsReorder}, reorderListLimit, 0)
	if err != nil {
		return nil, err
	}

	reorder := make([]dto.ProductResponse, 0, len(low))
	for _, p := range low {
		reorder = append(reorder, dto.ProductResponse{
			ID:           p.ID,
			CategoryID:   p.CategoryID,
			SKU:          p.SKU,
			Name:         p.Name,
			Description:  p.Description,
			UnitPrice:    p.UnitPrice,
			StockLevel:   p.StockLevel,
			ReorderPoint: p.ReorderPoint,
			NeedsReorder: p.NeedsReorder(),
			IsActive:     p.IsActive,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}

	return &dto.SalesSummaryResponse{
		TotalSales:    summary.TotalSales,
		TotalAmount:   summary.TotalAmount,
		ByStatus:      summary.ByStatus,
		ReorderNeeded: reorder,
	}, nil
}
