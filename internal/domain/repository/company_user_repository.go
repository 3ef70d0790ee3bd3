package repository

import "github.com/jhoicas/compras-api/internal/domain/entity"

// CompanyUserRepository define el puerto de persistencia para membresías
// usuario-empresa (DIP).
type CompanyUserRepository interface {
	Create(link *entity.CompanyUser) error
	GetByID(id string) (*entity.CompanyUser, error)
	GetByUserAndCompany(userID, companyID string) (*entity.CompanyUser, error)
	// FindActiveByUser devuelve la membresía activa del usuario, o nil si no tiene.
	FindActiveByUser(userID string) (*entity.CompanyUser, error)
	ListByUser(userID string) ([]*entity.CompanyUser, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.CompanyUser, error)
	Update(link *entity.CompanyUser) error
	// DeactivateAllByUser apaga toda membresía activa del usuario.
	// Se usa dentro de la transacción de activación para sostener el
	// invariante "a lo sumo una membresía activa por usuario".
	DeactivateAllByUser(userID string) error
}
