package pos_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
	"github.com/jhoicas/hospital-pos-api/internal/domain/pos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func productConStock(stock int64, price string) *entity.Product {
	return &entity.Product{
		ID:         "prod-1",
		SKU:        "AMOX-500",
		Name:       "Amoxicilina 500mg",
		UnitPrice:  decimal.RequireFromString(price),
		StockLevel: stock,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveUnitPrice
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveUnitPrice_SinOverride_UsaPrecioCatalogo(t *testing.T) {
	p := productConStock(10, "2.00")
	price := pos.ResolveUnitPrice(p, nil)
	assert.True(t, price.Equal(dec("2.00")), "sin override debe usar el precio del catálogo")
}

func TestResolveUnitPrice_ConOverride_UsaElOverrideTalCual(t *testing.T) {
	p := productConStock(10, "2.00")
	price := pos.ResolveUnitPrice(p, decPtr("1.50"))
	assert.True(t, price.Equal(dec("1.50")), "el override del caller se usa tal cual")
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildLine
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildLine_LineaValida_CalculaSubtotal(t *testing.T) {
	p := productConStock(10, "2.00")
	line, err := pos.BuildLine(0, p, 4, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(4), line.Quantity)
	assert.True(t, line.UnitPrice.Equal(dec("2.00")))
	assert.True(t, line.Subtotal.Equal(dec("8.00")), "subtotal = cantidad × precio unitario")
}

func TestBuildLine_NoMutaElProducto(t *testing.T) {
	p := productConStock(10, "2.00")
	_, err := pos.BuildLine(0, p, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.StockLevel, "la validación no descuenta stock")
}

func TestBuildLine_CantidadCero_RetornaInvalidQuantity(t *testing.T) {
	p := productConStock(10, "2.00")
	_, err := pos.BuildLine(2, p, 0, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	var lineErr *domain.LineError
	require.True(t, errors.As(err, &lineErr), "el error debe llevar línea y producto")
	assert.Equal(t, 2, lineErr.Line)
	assert.Equal(t, "prod-1", lineErr.ProductID)
}

func TestBuildLine_CantidadNegativa_RetornaInvalidQuantity(t *testing.T) {
	p := productConStock(10, "2.00")
	_, err := pos.BuildLine(0, p, -3, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestBuildLine_StockInsuficiente_RetornaInsufficientStock(t *testing.T) {
	p := productConStock(2, "2.00")
	_, err := pos.BuildLine(0, p, 5, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), p.StockLevel, "el stock no cambia al fallar la validación")
}

func TestBuildLine_CantidadIgualAlStock_EsValida(t *testing.T) {
	p := productConStock(5, "1.00")
	line, err := pos.BuildLine(0, p, 5, nil)
	require.NoError(t, err)
	assert.True(t, line.Subtotal.Equal(dec("5.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalAmount
// ──────────────────────────────────────────────────────────────────────────────

func buildLines(t *testing.T, subtotales ...string) []*entity.SaleLine {
	t.Helper()
	lines := make([]*entity.SaleLine, 0, len(subtotales))
	for i, s := range subtotales {
		lines = append(lines, &entity.SaleLine{LineNo: i, Subtotal: dec(s)})
	}
	return lines
}

func TestTotalAmount_SumaYAplicaDescuento(t *testing.T) {
	lines := buildLines(t, "8.00", "3.50")
	total, err := pos.TotalAmount(lines, dec("1.00"))
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("10.50")), "total = 11.50 − 1.00")
}

func TestTotalAmount_SinLineas_RetornaEmptySale(t *testing.T) {
	_, err := pos.TotalAmount(nil, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

func TestTotalAmount_DescuentoNegativo_RetornaInvalidDiscount(t *testing.T) {
	lines := buildLines(t, "8.00")
	_, err := pos.TotalAmount(lines, dec("-0.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
}

func TestTotalAmount_DescuentoMayorQueElTotal_RetornaCero(t *testing.T) {
	lines := buildLines(t, "8.00")
	total, err := pos.TotalAmount(lines, dec("100.00"))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.Zero), "el total nunca es negativo")
}

func TestTotalAmount_DescuentoCero_EsElTotalCrudo(t *testing.T) {
	lines := buildLines(t, "2.00", "2.00", "2.00")
	total, err := pos.TotalAmount(lines, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("6.00")))
}

// Ejemplo de referencia: stock 10, precio 2.00, cantidad 4, descuento 1.00
// → línea con subtotal 8.00 y total 7.00.
func TestFlujoLineaMasTotal_EjemploReferencia(t *testing.T) {
	p := productConStock(10, "2.00")
	line, err := pos.BuildLine(0, p, 4, nil)
	require.NoError(t, err)
	require.True(t, line.Subtotal.Equal(dec("8.00")))

	total, err := pos.TotalAmount([]*entity.SaleLine{line}, dec("1.00"))
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("7.00")))
}
