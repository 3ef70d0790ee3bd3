package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

var _ repository.PurchaseInvoiceRepository = (*PurchaseInvoiceRepo)(nil)

// PurchaseInvoiceRepo implementación del puerto PurchaseInvoiceRepository
// sobre PostgreSQL (usable con pool o tx).
type PurchaseInvoiceRepo struct {
	q Querier
}

// NewPurchaseInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseInvoiceRepository(q Querier) *PurchaseInvoiceRepo {
	return &PurchaseInvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, supplier_id, invoice_number, issue_date, total_amount, status, created_at, finalized_at`

// Create persiste cabezal y líneas. Con un Querier atado a tx, cabezal y
// líneas entran o no entran juntos.
func (r *PurchaseInvoiceRepo) Create(invoice *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) error {
	query := `
		INSERT INTO purchase_invoices (id, company_id, supplier_id, invoice_number, issue_date, total_amount, status, created_at, finalized_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.SupplierID, invoice.InvoiceNumber,
		invoice.IssueDate, invoice.TotalAmount, invoice.Status, invoice.CreatedAt, invoice.FinalizedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase invoice: %w", err)
	}
	for _, item := range items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO purchase_invoice_items (id, invoice_id, product_id, quantity, unit_cost, total_cost)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.InvoiceID, item.ProductID, item.Quantity, item.UnitCost, item.TotalCost,
		)
		if err != nil {
			return fmt.Errorf("insert purchase invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un cabezal por ID.
func (r *PurchaseInvoiceRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	return r.getOne(`SELECT `+invoiceColumns+` FROM purchase_invoices WHERE id = $1`, id)
}

// GetByNumber obtiene un cabezal por (empresa, proveedor, número).
func (r *PurchaseInvoiceRepo) GetByNumber(companyID, supplierID, invoiceNumber string) (*entity.PurchaseInvoice, error) {
	return r.getOne(`SELECT `+invoiceColumns+` FROM purchase_invoices
		WHERE company_id = $1 AND supplier_id = $2 AND invoice_number = $3`,
		companyID, supplierID, invoiceNumber)
}

func (r *PurchaseInvoiceRepo) getOne(query string, args ...any) (*entity.PurchaseInvoice, error) {
	var inv entity.PurchaseInvoice
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.CompanyID, &inv.SupplierID, &inv.InvoiceNumber,
		&inv.IssueDate, &inv.TotalAmount, &inv.Status, &inv.CreatedAt, &inv.FinalizedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase invoice: %w", err)
	}
	return &inv, nil
}

// GetItems obtiene las líneas de una nota de compra.
func (r *PurchaseInvoiceRepo) GetItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_id, quantity, unit_cost, total_cost
		FROM purchase_invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get purchase invoice items: %w", err)
	}
	defer rows.Close()
	var items []*entity.PurchaseInvoiceItem
	for rows.Next() {
		var it entity.PurchaseInvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.TotalCost); err != nil {
			return nil, fmt.Errorf("scan purchase invoice item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado del cabezal (y fija finalized_at al finalizar).
func (r *PurchaseInvoiceRepo) UpdateStatus(id, status string, finalizedAt *time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_invoices SET status = $2, finalized_at = COALESCE($3, finalized_at) WHERE id = $1`,
		id, status, finalizedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase invoice status: %w", err)
	}
	return nil
}

// ListByCompany lista cabezales por empresa, más recientes primero.
func (r *PurchaseInvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseInvoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM purchase_invoices WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseInvoice
	for rows.Next() {
		var inv entity.PurchaseInvoice
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.SupplierID, &inv.InvoiceNumber,
			&inv.IssueDate, &inv.TotalAmount, &inv.Status, &inv.CreatedAt, &inv.FinalizedAt); err != nil {
			return nil, fmt.Errorf("scan purchase invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
