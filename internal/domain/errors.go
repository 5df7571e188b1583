package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores del flujo de venta POS. Todos son corregibles por el caller:
// el sistema nunca deja estado parcial cuando alguno de estos ocurre.
var (
	ErrEmptySale         = errors.New("la venta no tiene líneas")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidDiscount   = errors.New("descuento inválido")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidPatient    = errors.New("paciente no encontrado")
	ErrImmutableField    = errors.New("campo no modificable en esta operación")
)

// LineError envuelve un error de venta con la línea y el producto que lo
// causaron, para que el caller pueda corregir y reenviar. Es transparente
// para errors.Is contra los sentinelas de arriba.
type LineError struct {
	Line      int    // índice de la línea en el request (base 0)
	ProductID string // producto que disparó el error (puede ir vacío)
	Err       error
}

func (e *LineError) Error() string {
	if e.ProductID == "" {
		return fmt.Sprintf("línea %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("línea %d (producto %s): %v", e.Line, e.ProductID, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// NewLineError construye un LineError para la línea indicada.
func NewLineError(line int, productID string, err error) *LineError {
	return &LineError{Line: line, ProductID: productID, Err: err}
}

// NewImmutableFieldError envuelve ErrImmutableField con el nombre del campo
// rechazado. Transparente para errors.Is(err, ErrImmutableField).
func NewImmutableFieldError(field string) error {
	return fmt.Errorf("el campo %q no es modificable: %w", field, ErrImmutableField)
}
