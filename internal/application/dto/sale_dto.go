package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registra una venta completa: cabezal + líneas + una
// salida OUT del libro por línea, todo en una transacción. El total del
// cabezal NO se acepta del cliente: se recalcula como la suma de los
// totales de línea.
type CreateSaleRequest struct {
	CustomerID *string         `json:"customer_id,omitempty"`
	Items      []SaleItemInput `json:"items"`
	Notes      string          `json:"notes,omitempty"`
}

// SaleItemInput línea de producto de la venta.
type SaleItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleResponse representación de una venta.
type SaleResponse struct {
	ID          string             `json:"id"`
	CompanyID   string             `json:"company_id"`
	CustomerID  *string            `json:"customer_id,omitempty"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
	Items       []SaleItemResponse `json:"items,omitempty"`
}

// SaleItemResponse línea de la venta.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
