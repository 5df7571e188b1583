package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	"github.com/jhoicas/hospital-pos-api/internal/application/inventory"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo repositorio en memoria. El mutex del runner serializa los
// ajustes igual que lo haría el bloqueo de fila; el snapshot permite rollback.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		c := *p
		r.products[p.ID] = &c
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) GetBySKU(_ string) (*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return r.Create(p) }

func (r *fakeProductRepo) UpdateStock(productID string, stockLevel int64) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockLevel = stockLevel
	return nil
}

func (r *fakeProductRepo) List(_ repository.ProductFilter, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(_ string) error { return nil }

// fakeTxRunner ejecuta fn con el repo "atado a la tx"; si fn falla,
// restaura el estado previo (rollback).
type fakeTxRunner struct {
	mu   sync.Mutex
	repo *fakeProductRepo
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := make(map[string]*entity.Product, len(t.repo.products))
	for k, v := range t.repo.products {
		c := *v
		snap[k] = &c
	}
	if err := fn(t.repo); err != nil {
		t.repo.products = snap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func buildAdjustUseCase(products ...*entity.Product) (*inventory.AdjustStockUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo(products...)
	runner := &fakeTxRunner{repo: repo}
	return inventory.NewAdjustStockUseCase(runner, zerolog.Nop()), repo
}

func gasa(stock int64) *entity.Product {
	return &entity.Product{
		ID:           "prod-gasa",
		SKU:          "GASA-01",
		Name:         "Gasa estéril",
		UnitPrice:    decimal.RequireFromString("3.50"),
		StockLevel:   stock,
		ReorderPoint: 10,
		IsActive:     true,
	}
}

// Reposición: delta positivo suma al stock.
func TestAdjustStock_Reposicion(t *testing.T) {
	uc, repo := buildAdjustUseCase(gasa(4))

	out, err := uc.AdjustStock(context.Background(), "prod-gasa", dto.AdjustStockRequest{Delta: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(24), out.StockLevel)
	assert.False(t, out.NeedsReorder, "con 24 unidades ya no está en punto de reorden")

	stored, _ := repo.GetByID("prod-gasa")
	assert.Equal(t, int64(24), stored.StockLevel)
}

// Merma: delta negativo descuenta, sin pasar de cero.
func TestAdjustStock_Merma(t *testing.T) {
	uc, repo := buildAdjustUseCase(gasa(10))

	out, err := uc.AdjustStock(context.Background(), "prod-gasa", dto.AdjustStockRequest{Delta: -3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.StockLevel)

	stored, _ := repo.GetByID("prod-gasa")
	assert.Equal(t, int64(7), stored.StockLevel)
}

// Delta que dejaría el stock negativo se rechaza sin efectos.
func TestAdjustStock_NoPermiteStockNegativo(t *testing.T) {
	uc, repo := buildAdjustUseCase(gasa(5))

	_, err := uc.AdjustStock(context.Background(), "prod-gasa", dto.AdjustStockRequest{Delta: -6})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, _ := repo.GetByID("prod-gasa")
	assert.Equal(t, int64(5), stored.StockLevel, "el rollback debe dejar el stock intacto")
}

// Delta cero no es un ajuste.
func TestAdjustStock_DeltaCeroInvalido(t *testing.T) {
	uc, _ := buildAdjustUseCase(gasa(5))

	_, err := uc.AdjustStock(context.Background(), "prod-gasa", dto.AdjustStockRequest{Delta: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto inexistente.
func TestAdjustStock_ProductoNoExiste(t *testing.T) {
	uc, _ := buildAdjustUseCase(gasa(5))

	_, err := uc.AdjustStock(context.Background(), "prod-fantasma", dto.AdjustStockRequest{Delta: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
