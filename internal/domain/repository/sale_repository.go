package repository

import "github.com/jhoicas/compras-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus
// líneas (DIP).
type SaleRepository interface {
	// Create persiste cabezal y líneas. Los llamadores que exigen atomicidad
	// con los movimientos del libro deben usar el repo atado a una transacción.
	Create(sale *entity.Sale, items []*entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error)
}
