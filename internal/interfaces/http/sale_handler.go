package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	apppos "github.com/jhoicas/hospital-pos-api/internal/application/pos"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP del punto de venta (protegido).
type SaleHandler struct {
	uc      *apppos.SaleUseCase
	receipt *apppos.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *apppos.SaleUseCase, receipt *apppos.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receipt: receipt}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Valida líneas contra stock, resuelve precios, calcula el total
// @Description  con descuento y persiste venta + descuento de stock de forma atómica.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "items, discount, payment_method, patient_id"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID (con líneas en orden de envío)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas (más recientes primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListSales(c.UserContext(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estado / método de pago de una venta
// @Description  Solo status y payment_method son modificables. Cualquier otro
// @Description  campo presente en el body se rechaza con IMMUTABLE_FIELD.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "status, payment_method"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [patch]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	if err := rejectImmutableSaleFields(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMMUTABLE_FIELD", Message: err.Error()})
	}
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSale(c.UserContext(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status o payment_method desconocidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipt.GenerateReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="receipt-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// saleError traduce los errores de dominio de la venta a respuestas HTTP,
// adjuntando línea y producto cuando el error es por línea.
func saleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	resp := dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status, resp.Code, resp.Message = fiber.StatusUnauthorized, "UNAUTHORIZED", "operador no autenticado"
	case errors.Is(err, domain.ErrEmptySale):
		status, resp.Code, resp.Message = fiber.StatusBadRequest, "EMPTY_SALE", "la venta debe tener al menos una línea"
	case errors.Is(err, domain.ErrInvalidQuantity):
		status, resp.Code, resp.Message = fiber.StatusBadRequest, "INVALID_QUANTITY", "la cantidad debe ser mayor a cero"
	case errors.Is(err, domain.ErrInvalidDiscount):
		status, resp.Code, resp.Message = fiber.StatusBadRequest, "INVALID_DISCOUNT", "el descuento no puede ser negativo"
	case errors.Is(err, domain.ErrInvalidInput):
		status, resp.Code, resp.Message = fiber.StatusBadRequest, "VALIDATION", "método de pago desconocido"
	case errors.Is(err, domain.ErrProductNotFound):
		status, resp.Code, resp.Message = fiber.StatusNotFound, "PRODUCT_NOT_FOUND", "producto no encontrado"
	case errors.Is(err, domain.ErrInvalidPatient):
		status, resp.Code, resp.Message = fiber.StatusNotFound, "PATIENT_NOT_FOUND", "paciente no encontrado"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, resp.Code, resp.Message = fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock insuficiente"
	}

	var lineErr *domain.LineError
	if errors.As(err, &lineErr) {
		idx := lineErr.Line
		resp.LineIndex = &idx
		resp.ProductID = lineErr.ProductID
	}
	return c.Status(status).JSON(resp)
}

// rejectImmutableSaleFields rechaza cualquier clave del body distinta de
// status y payment_method: total, descuento, líneas y cajero son inmutables.
func rejectImmutableSaleFields(body []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		// El BodyParser reportará el cuerpo inválido con su propio código.
		return nil
	}
	for key := range raw {
		switch key {
		case "status", "payment_method":
		default:
			return domain.NewImmutableFieldError(key)
		}
	}
	return nil
}
