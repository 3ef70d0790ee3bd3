package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

var _ repository.PayableAccountRepository = (*PayableAccountRepo)(nil)

// PayableAccountRepo implementación del puerto PayableAccountRepository
// sobre PostgreSQL (usable con pool o tx).
type PayableAccountRepo struct {
	q Querier
}

// NewPayableAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPayableAccountRepository(q Querier) *PayableAccountRepo {
	return &PayableAccountRepo{q: q}
}

const payableColumns = `id, company_id, invoice_id, due_date, amount, status, payment_date`

// Create persiste una cuota a pagar.
func (r *PayableAccountRepo) Create(payable *entity.PayableAccount) error {
	query := `
		INSERT INTO payable_accounts (id, company_id, invoice_id, due_date, amount, status, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		payable.ID, payable.CompanyID, payable.InvoiceID, payable.DueDate,
		payable.Amount, payable.Status, payable.PaymentDate,
	)
	if err != nil {
		return fmt.Errorf("insert payable account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuota por ID.
func (r *PayableAccountRepo) GetByID(id string) (*entity.PayableAccount, error) {
	var p entity.PayableAccount
	err := r.q.QueryRow(context.Background(),
		`SELECT `+payableColumns+` FROM payable_accounts WHERE id = $1`, id).Scan(
		&p.ID, &p.CompanyID, &p.InvoiceID, &p.DueDate, &p.Amount, &p.Status, &p.PaymentDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payable account: %w", err)
	}
	return &p, nil
}

// ListByInvoice lista las cuotas de una nota de compra por vencimiento.
func (r *PayableAccountRepo) ListByInvoice(invoiceID string) ([]*entity.PayableAccount, error) {
	query := `SELECT ` + payableColumns + `
		FROM payable_accounts WHERE invoice_id = $1 ORDER BY due_date`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payables by invoice: %w", err)
	}
	defer rows.Close()
	return scanPayables(rows)
}

// ListByCompany lista cuotas de la empresa; status vacío = todas.
func (r *PayableAccountRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.PayableAccount, error) {
	query := `SELECT ` + payableColumns + ` FROM payable_accounts WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY due_date LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()
	return scanPayables(rows)
}

func scanPayables(rows pgx.Rows) ([]*entity.PayableAccount, error) {
	var list []*entity.PayableAccount
	for rows.Next() {
		var p entity.PayableAccount
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.InvoiceID, &p.DueDate, &p.Amount, &p.Status, &p.PaymentDate); err != nil {
			return nil, fmt.Errorf("scan payable account: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza estado y fecha de pago de una cuota.
func (r *PayableAccountRepo) Update(payable *entity.PayableAccount) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE payable_accounts SET due_date = $2, amount = $3, status = $4, payment_date = $5 WHERE id = $1`,
		payable.ID, payable.DueDate, payable.Amount, payable.Status, payable.PaymentDate,
	)
	if err != nil {
		return fmt.Errorf("update payable account: %w", err)
	}
	return nil
}

// MarkOverdue marca como OVERDUE toda cuota PENDING con vencimiento anterior
// a asOf. Devuelve cuántas filas cambió.
func (r *PayableAccountRepo) MarkOverdue(companyID string, asOf time.Time) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE payable_accounts SET status = $3 WHERE company_id = $1 AND status = $4 AND due_date < $2`,
		companyID, asOf, entity.PayableStatusOverdue, entity.PayableStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("mark payables overdue: %w", err)
	}
	return cmd.RowsAffected(), nil
}
