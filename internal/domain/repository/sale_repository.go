package repository

import "github.com/jhoicas/hospital-pos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Create y CreateLine se invocan solo dentro de la transacción de venta;
// UpdateStatus es la única mutación permitida post-creación.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	// GetLinesBySaleID devuelve las líneas en orden de envío (line_no asc).
	GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error)
	List(limit, offset int) ([]*entity.Sale, error)
	// UpdateStatus actualiza únicamente status y payment_method.
	UpdateStatus(saleID, status, paymentMethod string) error
}
