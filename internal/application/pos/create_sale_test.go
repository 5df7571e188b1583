package pos_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	apppos "github.com/jhoicas/hospital-pos-api/internal/application/pos"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testCashierID = "11111111-1111-1111-1111-111111111111"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// buildUseCase arma el caso de uso sobre un store en memoria con los
// productos indicados ya sembrados.
func buildUseCase(products ...*entity.Product) (*apppos.SaleUseCase, *fakeStore) {
	store := newFakeStore()
	for _, p := range products {
		c := *p
		store.products[p.ID] = &c
	}
	uc := apppos.NewSaleUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
		&fakePatientRepo{store: store},
		&fakeSaleRepo{store: store},
		zerolog.Nop(),
	)
	return uc, store
}

func producto(id string, stock int64, price string) *entity.Product {
	return &entity.Product{
		ID:         id,
		SKU:        "SKU-" + id,
		Name:       "Producto " + id,
		UnitPrice:  dec(price),
		StockLevel: stock,
		IsActive:   true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo de referencia: stock 10, precio 2.00, cantidad 4, descuento 1.00
// → venta con una línea (subtotal 8.00), total 7.00 y stock final 6.
func TestCreateSale_EjemploReferencia(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"))

	resp, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:    []dto.SaleLineRequest{{ProductID: "P1", Quantity: 4}},
		Discount: dec("1.00"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].UnitPrice.Equal(dec("2.00")))
	assert.True(t, resp.Lines[0].Subtotal.Equal(dec("8.00")))
	assert.True(t, resp.TotalAmount.Equal(dec("7.00")))
	assert.Equal(t, entity.SaleStatusPending, resp.Status, "el estado inicial es PENDING")
	assert.Equal(t, testCashierID, resp.CashierID)

	assert.Equal(t, int64(6), store.products["P1"].StockLevel, "el stock baja exactamente la cantidad vendida")
	require.Len(t, store.sales, 1, "la venta quedó persistida")
}

func TestCreateSale_MultiLinea_DescuentaCadaProductoYConservaOrden(t *testing.T) {
	uc, store := buildUseCase(
		producto("P1", 10, "2.00"),
		producto("P2", 8, "3.50"),
		producto("P3", 5, "1.25"),
	)

	resp, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: "P2", Quantity: 2},
			{ProductID: "P1", Quantity: 1},
			{ProductID: "P3", Quantity: 4},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 3)
	assert.Equal(t, "P2", resp.Lines[0].ProductID, "las líneas conservan el orden de envío")
	assert.Equal(t, "P1", resp.Lines[1].ProductID)
	assert.Equal(t, "P3", resp.Lines[2].ProductID)

	assert.Equal(t, int64(6), store.products["P2"].StockLevel)
	assert.Equal(t, int64(9), store.products["P1"].StockLevel)
	assert.Equal(t, int64(1), store.products["P3"].StockLevel)

	// 7.00 + 2.00 + 5.00
	assert.True(t, resp.TotalAmount.Equal(dec("14.00")))
}

func TestCreateSale_OverrideDePrecio_SeUsaTalCual(t *testing.T) {
	uc, _ := buildUseCase(producto("P1", 10, "2.00"))

	resp, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: "P1", Quantity: 2, UnitPrice: decPtr("0.50")}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Lines[0].UnitPrice.Equal(dec("0.50")))
	assert.True(t, resp.Lines[0].Subtotal.Equal(dec("1.00")))
}

func TestCreateSale_SinPaciente_AsignaWalkIn(t *testing.T) {
	uc, _ := buildUseCase(producto("P1", 10, "2.00"))

	resp, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: "P1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WalkInPatientID, resp.PatientID, "venta de mostrador usa el paciente centinela")
}

func TestCreateSale_ConPacienteExistente_LoAsocia(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"))
	store.patients["PAC1"] = &entity.Patient{ID: "PAC1", Name: "Juana Pérez", IsActive: true}

	resp, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:     []dto.SaleLineRequest{{ProductID: "P1", Quantity: 1}},
		PatientID: "PAC1",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAC1", resp.PatientID)
}

func TestCreateSale_DescuentoMayorQueElTotal_TotalQuedaEnCero(t *testing.T) {
	uc, _ := buildUseCase(producto("P1", 10, "2.00"))

	resp, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:    []dto.SaleLineRequest{{ProductID: "P1", Quantity: 1}},
		Discount: dec("999.00"),
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.Zero), "el total nunca es negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale — rechazos (sin efectos)
// ──────────────────────────────────────────────────────────────────────────────

// requireSinEfectos verifica que no quedó ninguna venta y que el stock de
// los productos dados no cambió.
func requireSinEfectos(t *testing.T, store *fakeStore, stocks map[string]int64) {
	t.Helper()
	require.Empty(t, store.sales, "no debe persistirse ninguna venta")
	for id, want := range stocks {
		assert.Equal(t, want, store.products[id].StockLevel,
			"el stock del producto %s no debe cambiar", id)
	}
}

func TestCreateSale_SinLineas_RetornaEmptySale(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"))

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
	requireSinEfectos(t, store, map[string]int64{"P1": 10})
}

func TestCreateSale_CantidadInvalida_AbortaTodaLaVenta(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"), producto("P2", 10, "1.00"))

	// La primera línea es válida; la segunda trae cantidad 0. Nada muta.
	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: "P1", Quantity: 3},
			{ProductID: "P2", Quantity: 0},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	var lineErr *domain.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 1, lineErr.Line, "el error identifica la línea ofensora")
	assert.Equal(t, "P2", lineErr.ProductID)

	requireSinEfectos(t, store, map[string]int64{"P1": 10, "P2": 10})
}

func TestCreateSale_StockInsuficiente_NoMutaNada(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 2, "2.00"))

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: "P1", Quantity: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	requireSinEfectos(t, store, map[string]int64{"P1": 2})
}

func TestCreateSale_DescuentoNegativo_RetornaInvalidDiscount(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"))

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:    []dto.SaleLineRequest{{ProductID: "P1", Quantity: 1}},
		Discount: dec("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
	requireSinEfectos(t, store, map[string]int64{"P1": 10})
}

func TestCreateSale_ProductoInexistente_RetornaProductNotFound(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"))

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: "P1", Quantity: 1},
			{ProductID: "NO-EXISTE", Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	var lineErr *domain.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 1, lineErr.Line)

	requireSinEfectos(t, store, map[string]int64{"P1": 10})
}

func TestCreateSale_PacienteInexistente_RetornaInvalidPatient(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"))

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:     []dto.SaleLineRequest{{ProductID: "P1", Quantity: 1}},
		PatientID: "NO-EXISTE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPatient)
	requireSinEfectos(t, store, map[string]int64{"P1": 10})
}

func TestCreateSale_MetodoDePagoDesconocido_RetornaInvalidInput(t *testing.T) {
	uc, _ := buildUseCase(producto("P1", 10, "2.00"))

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{ProductID: "P1", Quantity: 1}},
		PaymentMethod: "BARTER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_SinCajero_RetornaUnauthorized(t *testing.T) {
	uc, _ := buildUseCase(producto("P1", 10, "2.00"))

	_, err := uc.CreateSale(context.Background(), "", dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: "P1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad: fallo a mitad del commit revierte todo
// ──────────────────────────────────────────────────────────────────────────────

// Dos líneas sobre el mismo producto que individualmente pasan la
// validación pero juntas sobregiran el stock: la primera descuenta dentro
// de la tx y la segunda falla bajo bloqueo → rollback completo.
func TestCreateSale_FalloEnLineaPosterior_RevierteDescuentosPrevios(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 10, "2.00"))

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: "P1", Quantity: 6},
			{ProductID: "P1", Quantity: 6},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var lineErr *domain.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 1, lineErr.Line, "falla la segunda línea, ya dentro de la tx")

	requireSinEfectos(t, store, map[string]int64{"P1": 10})
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos ventas que juntas sobregiran un producto
// ──────────────────────────────────────────────────────────────────────────────

// Stock 5 y dos requests concurrentes de cantidad 3: exactamente una
// confirma y la otra recibe ErrInsufficientStock; el stock final es 2.
func TestCreateSale_Concurrentes_SoloUnaConfirma(t *testing.T) {
	uc, store := buildUseCase(producto("P1", 5, "2.00"))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
				Items: []dto.SaleLineRequest{{ProductID: "P1", Quantity: 3}},
			})
		}(i)
	}
	wg.Wait()

	oks, insufficient := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "exactamente una venta debe confirmar")
	assert.Equal(t, 1, insufficient, "la otra debe fallar por stock")
	assert.Equal(t, int64(2), store.products["P1"].StockLevel)
	assert.Len(t, store.sales, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSale / ListSales
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_DevuelveLineasEnOrden(t *testing.T) {
	uc, _ := buildUseCase(producto("P1", 10, "2.00"), producto("P2", 10, "1.00"))

	created, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{ProductID: "P2", Quantity: 1},
			{ProductID: "P1", Quantity: 2},
		},
	})
	require.NoError(t, err)

	got, err := uc.GetSale(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "P2", got.Lines[0].ProductID)
	assert.Equal(t, "P1", got.Lines[1].ProductID)
	assert.True(t, got.TotalAmount.Equal(created.TotalAmount))
}

func TestGetSale_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.GetSale(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
