package entity

import "time"

// User representa un usuario del sistema. El email es la identidad de login
// (único). El usuario tiene ciclo de vida independiente de las empresas;
// su relación con ellas vive en CompanyUser.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Name         string
	IsStaff      bool
	IsActive     bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
