package purchasing

import (
	"context"
	"time"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// PayableUseCase maneja las cuentas por pagar originadas en notas de compra.
type PayableUseCase struct {
	resolver    *tenant.Resolver
	payableRepo repository.PayableAccountRepository
}

// NewPayableUseCase construye el caso de uso.
func NewPayableUseCase(resolver *tenant.Resolver, payableRepo repository.PayableAccountRepository) *PayableUseCase {
	return &PayableUseCase{resolver: resolver, payableRepo: payableRepo}
}

// List lista las cuotas de la empresa activa; status vacío = todas.
func (uc *PayableUseCase) List(ctx context.Context, userID, status string, page dto.PageRequest) ([]dto.PayableResponse, error) {
	page.DefaultPage()
	switch status {
	case "", entity.PayableStatusPending, entity.PayableStatusPaid, entity.PayableStatusOverdue:
	default:
		return nil, domain.ErrInvalidInput
	}
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]dto.PayableResponse, error) {
		list, err := uc.payableRepo.ListByCompany(companyID, status, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.PayableResponse, 0, len(list))
		for _, p := range list {
			out = append(out, toPayableResponse(p))
		}
		return out, nil
	})
}

// Pay marca una cuota como pagada. Solo PENDING u OVERDUE pueden pagarse.
func (uc *PayableUseCase) Pay(ctx context.Context, userID, payableID string, paymentDate *time.Time) (*dto.PayableResponse, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, err := uc.payableRepo.GetByID(payableID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if p.Status != entity.PayableStatusPending && p.Status != entity.PayableStatusOverdue {
		return nil, domain.ErrConflict
	}
	when := time.Now()
	if paymentDate != nil {
		when = *paymentDate
	}
	p.Status = entity.PayableStatusPaid
	p.PaymentDate = &when
	if err := uc.payableRepo.Update(p); err != nil {
		return nil, err
	}
	resp := toPayableResponse(p)
	return &resp, nil
}

// MarkOverdue marca como OVERDUE toda cuota PENDING vencida de la empresa
// activa. Devuelve cuántas cuotas cambiaron.
func (uc *PayableUseCase) MarkOverdue(ctx context.Context, userID string) (int64, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return uc.payableRepo.MarkOverdue(companyID, time.Now())
}
