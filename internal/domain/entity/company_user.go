package entity

import "time"

// Roles válidos para una membresía CompanyUser.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// CompanyUser es la membresía de un usuario en una empresa.
// Invariantes: el par (user, company) es único; a lo sumo UNA membresía
// por usuario tiene Active=true (se garantiza al activar, desactivando
// cualquier otra). Revocar acceso desactiva la fila, nunca la borra.
type CompanyUser struct {
	ID        string
	UserID    string
	CompanyID string
	Role      string // admin | member
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
