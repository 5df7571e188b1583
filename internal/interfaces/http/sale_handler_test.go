package http_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppos "github.com/jhoicas/hospital-pos-api/internal/application/pos"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
	apphttp "github.com/jhoicas/hospital-pos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSaleID = "00000000-0000-0000-0000-0000000000s1"

// stubSaleRepo guarda una única venta y registra si UpdateStatus fue
// invocado, para poder asegurar que los rechazos no mutan nada.
type stubSaleRepo struct {
	sale          *entity.Sale
	statusUpdated bool
}

func (r *stubSaleRepo) Create(_ *entity.Sale) error         { return nil }
func (r *stubSaleRepo) CreateLine(_ *entity.SaleLine) error { return nil }

func (r *stubSaleRepo) GetByID(id string) (*entity.Sale, error) {
	if r.sale == nil || r.sale.ID != id {
		return nil, nil
	}
	c := *r.sale
	return &c, nil
}

func (r *stubSaleRepo) GetLinesBySaleID(_ string) ([]*entity.SaleLine, error) {
	return nil, nil
}

func (r *stubSaleRepo) List(_, _ int) ([]*entity.Sale, error) { return nil, nil }

func (r *stubSaleRepo) UpdateStatus(_, status, paymentMethod string) error {
	r.statusUpdated = true
	r.sale.Status = status
	r.sale.PaymentMethod = paymentMethod
	return nil
}

// buildSaleApp monta solo la ruta PATCH de ventas, sin middlewares, con
// una venta PENDING precargada.
func buildSaleApp() (*fiber.App, *stubSaleRepo) {
	repo := &stubSaleRepo{sale: &entity.Sale{
		ID:        testSaleID,
		Date:      time.Now(),
		PatientID: entity.WalkInPatientID,
		CashierID: testUserID,
		Status:    entity.SaleStatusPending,
	}}
	uc := apppos.NewSaleUseCase(nil, nil, nil, repo, zerolog.Nop())
	handler := apphttp.NewSaleHandler(uc, nil)

	app := fiber.New()
	app.Patch("/api/sales/:id", handler.Update)
	return app, repo
}

func patchSale(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/sales/"+testSaleID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PATCH /api/sales/:id — inmutabilidad de campos
// ──────────────────────────────────────────────────────────────────────────────

// Un body que trae un campo inmutable junto a uno mutable se rechaza
// completo: 400 IMMUTABLE_FIELD y la venta queda intacta.
func TestPatchSale_DescuentoEnBody_RechazadoSinMutar(t *testing.T) {
	app, repo := buildSaleApp()
	resp := patchSale(t, app, `{"status":"COMPLETED","discount":"0.00"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "IMMUTABLE_FIELD",
		"la respuesta debe indicar el código IMMUTABLE_FIELD")
	assert.Contains(t, string(body), "discount",
		"el mensaje debe nombrar el campo rechazado")

	assert.False(t, repo.statusUpdated, "la venta no debe mutarse")
	assert.Equal(t, entity.SaleStatusPending, repo.sale.Status)
}

// Cada campo inmutable conocido se rechaza por separado.
func TestPatchSale_CamposInmutables_Rechazados(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"total", `{"total_amount":"999.99"}`},
		{"lineas", `{"items":[{"product_id":"P1","quantity":1}]}`},
		{"cajero", `{"cashier_id":"otro-cajero"}`},
		{"paciente", `{"patient_id":"otro-paciente"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, repo := buildSaleApp()
			resp := patchSale(t, app, tc.body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			raw, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(raw), "IMMUTABLE_FIELD")
			assert.False(t, repo.statusUpdated)
		})
	}
}

// Solo status y payment_method pasan el filtro y actualizan la venta.
func TestPatchSale_SoloCamposMutables_Actualiza(t *testing.T) {
	app, repo := buildSaleApp()
	resp := patchSale(t, app, `{"status":"COMPLETED","payment_method":"CASH"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, repo.statusUpdated, "la actualización debe llegar al repositorio")
	assert.Equal(t, entity.SaleStatusCompleted, repo.sale.Status)
	assert.Equal(t, entity.PaymentCash, repo.sale.PaymentMethod)
}
