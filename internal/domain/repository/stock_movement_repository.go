package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos (DIP). El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByCompany lista movimientos de la empresa; productID vacío = todos
	// los productos. from/to acotan por fecha de creación.
	ListByCompany(companyID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// SumByProduct devuelve la suma con signo de todas las cantidades del
	// producto (0 si no hay movimientos). Es el stock actual.
	SumByProduct(productID string) (decimal.Decimal, error)
	// SumByProductAsOf es la misma suma restringida a created_at <= asOf.
	SumByProductAsOf(productID string, asOf time.Time) (decimal.Decimal, error)
}
