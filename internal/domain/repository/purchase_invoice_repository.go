package repository

import (
	"time"

	"github.com/jhoicas/compras-api/internal/domain/entity"
)

// PurchaseInvoiceRepository define el puerto de persistencia para notas de
// compra y sus líneas (DIP).
type PurchaseInvoiceRepository interface {
	// Create persiste cabezal y líneas. Los llamadores que exigen atomicidad
	// con otras escrituras deben usar el repo atado a una transacción.
	Create(invoice *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) error
	GetByID(id string) (*entity.PurchaseInvoice, error)
	GetItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error)
	GetByNumber(companyID, supplierID, invoiceNumber string) (*entity.PurchaseInvoice, error)
	UpdateStatus(id, status string, finalizedAt *time.Time) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseInvoice, error)
}

// PayableAccountRepository define el puerto de persistencia para cuentas por
// pagar (cuotas de notas de compra).
type PayableAccountRepository interface {
	Create(payable *entity.PayableAccount) error
	GetByID(id string) (*entity.PayableAccount, error)
	ListByInvoice(invoiceID string) ([]*entity.PayableAccount, error)
	// ListByCompany lista cuotas de la empresa; status vacío = todas.
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.PayableAccount, error)
	Update(payable *entity.PayableAccount) error
	// MarkOverdue marca como OVERDUE toda cuota PENDING con vencimiento
	// anterior a asOf. Devuelve cuántas filas cambió.
	MarkOverdue(companyID string, asOf time.Time) (int64, error)
}
