package tenant

import (
	"context"
	"errors"

	"github.com/jhoicas/compras-api/internal/domain"
)

// Owned es el contrato mínimo de un registro propiedad de una empresa.
// Lo implementan las entidades con campo CompanyID.
type Owned interface {
	AssignCompany(companyID string)
}

// List ejecuta fn con la empresa activa del principal. Si el principal no
// tiene membresía activa devuelve un slice vacío, nunca error y nunca
// filas de otros tenants. fn recibe el companyID ya resuelto y debe
// consultar filtrando por él.
func List[T any](ctx context.Context, r *Resolver, userID string, fn func(companyID string) ([]T, error)) ([]T, error) {
	companyID, err := r.ActiveCompanyID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveCompany) {
			return []T{}, nil
		}
		return nil, err
	}
	return fn(companyID)
}

// Assign fija la empresa activa del principal en el registro antes de
// persistir. Si no hay membresía activa falla con domain.ErrNoActiveCompany:
// un registro con dueño de tenant jamás se persiste sin empresa resuelta.
func Assign(ctx context.Context, r *Resolver, userID string, owned Owned) error {
	companyID, err := r.ActiveCompanyID(ctx, userID)
	if err != nil {
		return err
	}
	owned.AssignCompany(companyID)
	return nil
}
