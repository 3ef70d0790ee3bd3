package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseInvoiceRequest crea una nota de compra completa:
// cabezal + líneas + cuotas en una sola transacción.
// El total del cabezal NO se acepta del cliente: se recalcula como la suma
// de los totales de línea.
type CreatePurchaseInvoiceRequest struct {
	SupplierID    string                  `json:"supplier_id"`
	InvoiceNumber string                  `json:"invoice_number"`
	IssueDate     time.Time               `json:"issue_date"`
	Items         []PurchaseItemInput     `json:"items"`
	Installments  []InstallmentInput      `json:"installments"`
}

// PurchaseItemInput línea de producto de la nota.
type PurchaseItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// InstallmentInput cuota a pagar de la nota.
type InstallmentInput struct {
	DueDate time.Time       `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
}

// PurchaseInvoiceResponse representación de una nota de compra.
type PurchaseInvoiceResponse struct {
	ID            string                        `json:"id"`
	CompanyID     string                        `json:"company_id"`
	SupplierID    string                        `json:"supplier_id"`
	InvoiceNumber string                        `json:"invoice_number"`
	IssueDate     time.Time                     `json:"issue_date"`
	TotalAmount   decimal.Decimal               `json:"total_amount"`
	Status        string                        `json:"status"`
	FinalizedAt   *time.Time                    `json:"finalized_at,omitempty"`
	Items         []PurchaseInvoiceItemResponse `json:"items,omitempty"`
	Installments  []PayableResponse             `json:"installments,omitempty"`
}

// PurchaseInvoiceItemResponse línea de la nota.
type PurchaseInvoiceItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// PayableResponse cuota por pagar.
type PayableResponse struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	DueDate     time.Time       `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}

// PayRequest pago de una cuota.
type PayRequest struct {
	PaymentDate *time.Time `json:"payment_date,omitempty"` // hoy si es nil
}
