package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada para registrar un movimiento del libro.
// Quantity es la cantidad solicitada en valor absoluto (> 0); el signo lo
// aplica el motor según el tipo.
type RegisterMovementRequest struct {
	ProductID  string          `json:"product_id"`
	Type       string          `json:"type"` // IN, OUT, ADJ_IN, ADJ_OUT, RET_IN, RET_OUT
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	SupplierID *string         `json:"supplier_id,omitempty"`
	CustomerID *string         `json:"customer_id,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// MovementResponse representación de una entrada del libro.
type MovementResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	ProductID  string          `json:"product_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"` // con signo
	UnitPrice  decimal.Decimal `json:"unit_price"`
	SupplierID *string         `json:"supplier_id,omitempty"`
	CustomerID *string         `json:"customer_id,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MovementListRequest filtros de listado del libro.
type MovementListRequest struct {
	ProductID string `query:"product_id"`
	From      string `query:"from"` // RFC3339
	To        string `query:"to"`
	PageRequest
}
