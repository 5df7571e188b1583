package inventory

import (
	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
)

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
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
	}
}
