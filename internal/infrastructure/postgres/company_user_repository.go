package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

var _ repository.CompanyUserRepository = (*CompanyUserRepo)(nil)

// CompanyUserRepo implementación del puerto CompanyUserRepository sobre PostgreSQL (usable con pool o tx).
type CompanyUserRepo struct {
	q Querier
}

// NewCompanyUserRepository construye el adaptador de persistencia para membresías. Pasar pool o tx (Querier).
func NewCompanyUserRepository(q Querier) *CompanyUserRepo {
	return &CompanyUserRepo{q: q}
}

// Create persiste una membresía. El par (user_id, company_id) es único.
func (r *CompanyUserRepo) Create(link *entity.CompanyUser) error {
	query := `
		INSERT INTO company_users (id, user_id, company_id, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.UserID, link.CompanyID, link.Role, link.Active, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company_user: %w", err)
	}
	return nil
}

// GetByID obtiene una membresía por ID.
func (r *CompanyUserRepo) GetByID(id string) (*entity.CompanyUser, error) {
	return r.getOne(`SELECT id, user_id, company_id, role, active, created_at, updated_at
		FROM company_users WHERE id = $1`, id)
}

// GetByUserAndCompany obtiene la membresía del par (usuario, empresa).
func (r *CompanyUserRepo) GetByUserAndCompany(userID, companyID string) (*entity.CompanyUser, error) {
	return r.getOne(`SELECT id, user_id, company_id, role, active, created_at, updated_at
		FROM company_users WHERE user_id = $1 AND company_id = $2`, userID, companyID)
}

// FindActiveByUser devuelve la membresía activa del usuario, o nil si no
// tiene. Hay a lo sumo una fila con active = true por usuario.
func (r *CompanyUserRepo) FindActiveByUser(userID string) (*entity.CompanyUser, error) {
	return r.getOne(`SELECT id, user_id, company_id, role, active, created_at, updated_at
		FROM company_users WHERE user_id = $1 AND active = true LIMIT 1`, userID)
}

func (r *CompanyUserRepo) getOne(query string, args ...any) (*entity.CompanyUser, error) {
	var l entity.CompanyUser
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.UserID, &l.CompanyID, &l.Role, &l.Active, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company_user: %w", err)
	}
	return &l, nil
}

// ListByUser lista todas las membresías del usuario (activas e inactivas).
func (r *CompanyUserRepo) ListByUser(userID string) ([]*entity.CompanyUser, error) {
	query := `
		SELECT id, user_id, company_id, role, active, created_at, updated_at
		FROM company_users WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list company_users by user: %w", err)
	}
	defer rows.Close()
	return scanLinks(rows)
}

// ListByCompany lista las membresías de una empresa con paginación.
func (r *CompanyUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.CompanyUser, error) {
	query := `
		SELECT id, user_id, company_id, role, active, created_at, updated_at
		FROM company_users WHERE company_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list company_users by company: %w", err)
	}
	defer rows.Close()
	return scanLinks(rows)
}

func scanLinks(rows pgx.Rows) ([]*entity.CompanyUser, error) {
	var list []*entity.CompanyUser
	for rows.Next() {
		var l entity.CompanyUser
		if err := rows.Scan(&l.ID, &l.UserID, &l.CompanyID, &l.Role, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company_user: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza rol y estado activo de una membresía.
func (r *CompanyUserRepo) Update(link *entity.CompanyUser) error {
	query := `
		UPDATE company_users SET role = $2, active = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, link.ID, link.Role, link.Active, link.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update company_user: %w", err)
	}
	return nil
}

// DeactivateAllByUser apaga toda membresía activa del usuario. Se llama
// dentro de la transacción de activación, antes de encender la elegida.
func (r *CompanyUserRepo) DeactivateAllByUser(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE company_users SET active = false, updated_at = now() WHERE user_id = $1 AND active = true`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("deactivate company_users: %w", err)
	}
	return nil
}
