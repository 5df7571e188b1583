package repository

import "github.com/jhoicas/hospital-pos-api/internal/domain/entity"

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	CategoryID   string
	NeedsReorder *bool // nil = sin filtro
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y AdjustStock se usan dentro de transacciones para
// garantizar que el stock nunca quede negativo bajo concurrencia.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock del producto (dentro de una tx con la fila bloqueada).
	UpdateStock(productID string, stockLevel int64) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
