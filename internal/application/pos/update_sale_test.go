package pos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	apppos "github.com/jhoicas/hospital-pos-api/internal/application/pos"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func crearVentaBase(t *testing.T) (uc *apppos.SaleUseCase, store *fakeStore, saleID string) {
	t.Helper()
	uc, store = buildUseCase(producto("P1", 10, "2.00"))
	resp, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:    []dto.SaleLineRequest{{ProductID: "P1", Quantity: 4}},
		Discount: dec("1.00"),
	})
	require.NoError(t, err)
	return uc, store, resp.ID
}

func TestUpdateSale_CambiaStatusYMetodoDePago(t *testing.T) {
	uc, store, saleID := crearVentaBase(t)

	resp, err := uc.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Status:        strPtr(entity.SaleStatusCompleted),
		PaymentMethod: strPtr(entity.PaymentCard),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.Equal(t, entity.PaymentCard, resp.PaymentMethod)
	assert.Equal(t, entity.SaleStatusCompleted, store.sales[saleID].Status)
}

func TestUpdateSale_SoloStatus_ConservaMetodoDePago(t *testing.T) {
	uc, _, saleID := crearVentaBase(t)

	resp, err := uc.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Status: strPtr(entity.SaleStatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, resp.Status)
	assert.Equal(t, "", resp.PaymentMethod)
}

func TestUpdateSale_NoTocaTotalNiLineasNiCajero(t *testing.T) {
	uc, store, saleID := crearVentaBase(t)

	before := *store.sales[saleID]
	_, err := uc.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Status: strPtr(entity.SaleStatusCompleted),
	})
	require.NoError(t, err)

	after := store.sales[saleID]
	assert.True(t, after.TotalAmount.Equal(before.TotalAmount), "el total es inmutable")
	assert.True(t, after.Discount.Equal(before.Discount), "el descuento es inmutable")
	assert.Equal(t, before.CashierID, after.CashierID, "el cajero es inmutable")

	lines, err := uc.GetSale(context.Background(), saleID)
	require.NoError(t, err)
	require.Len(t, lines.Lines, 1, "las líneas no cambian")
}

func TestUpdateSale_StatusDesconocido_RetornaInvalidInput(t *testing.T) {
	uc, _, saleID := crearVentaBase(t)

	_, err := uc.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Status: strPtr("SHIPPED"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateSale_MetodoDePagoDesconocido_RetornaInvalidInput(t *testing.T) {
	uc, _, saleID := crearVentaBase(t)

	_, err := uc.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		PaymentMethod: strPtr("BARTER"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateSale_VentaInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.UpdateSale(context.Background(), "nada", dto.UpdateSaleRequest{
		Status: strPtr(entity.SaleStatusCompleted),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
