package tenant

import (
	"context"

	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// Resolver resuelve la empresa activa de un principal autenticado.
// Todo el scoping multi-tenant pasa por aquí: lecturas se filtran por la
// empresa resuelta y escrituras se asignan a ella. El resolver no muta
// el estado de las membresías.
type Resolver struct {
	links repository.CompanyUserRepository
}

// NewResolver construye el resolver con el puerto de membresías.
func NewResolver(links repository.CompanyUserRepository) *Resolver {
	return &Resolver{links: links}
}

// ActiveMembership devuelve la membresía activa del usuario o
// domain.ErrNoActiveCompany si no existe. "Sin empresa activa" es una
// condición recuperable: el caller decide entre lista vacía, mensaje o error.
func (r *Resolver) ActiveMembership(ctx context.Context, userID string) (*entity.CompanyUser, error) {
	if userID == "" {
		return nil, domain.ErrNoActiveCompany
	}
	link, err := r.links.FindActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNoActiveCompany
	}
	return link, nil
}

// ActiveCompanyID devuelve solo el ID de la empresa activa.
func (r *Resolver) ActiveCompanyID(ctx context.Context, userID string) (string, error) {
	link, err := r.ActiveMembership(ctx, userID)
	if err != nil {
		return "", err
	}
	return link.CompanyID, nil
}
