package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una nota de compra. El flujo es de una sola vía:
// DRAFT -> FINALIZED, y cualquiera de los dos puede pasar a CANCELED.
const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusFinalized = "FINALIZED"
	InvoiceStatusCanceled  = "CANCELED"
)

// Estados de una cuenta por pagar (cuota).
const (
	PayableStatusPending = "PENDING"
	PayableStatusPaid    = "PAID"
	PayableStatusOverdue = "OVERDUE"
)

// PurchaseInvoice es el cabezal de una nota de compra.
// InvoiceNumber es único por (empresa, proveedor). TotalAmount se recalcula
// siempre como la suma de los totales de línea, nunca se acepta del cliente.
type PurchaseInvoice struct {
	ID            string
	CompanyID     string
	SupplierID    string
	InvoiceNumber string
	IssueDate     time.Time
	TotalAmount   decimal.Decimal
	Status        string // DRAFT | FINALIZED | CANCELED
	CreatedAt     time.Time
	FinalizedAt   *time.Time
}

// PurchaseInvoiceItem es una línea de producto dentro de una nota de compra.
// TotalCost = Quantity * UnitCost, calculado al guardar.
type PurchaseInvoiceItem struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal
}

// PayableAccount es una cuota/parcela a pagar originada en una nota de compra.
type PayableAccount struct {
	ID          string
	CompanyID   string
	InvoiceID   string
	DueDate     time.Time
	Amount      decimal.Decimal
	Status      string // PENDING | PAID | OVERDUE
	PaymentDate *time.Time
}
