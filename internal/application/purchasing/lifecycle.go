package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// Finalize pasa la nota de DRAFT a FINALIZED y, en la misma transacción,
// registra una entrada IN en el libro por cada línea (con referencia al
// proveedor). El costo promedio del producto se recalcula en cada entrada.
// Transición de una sola vía: cualquier otro estado origen -> ErrConflict.
func (uc *PurchaseUseCase) Finalize(ctx context.Context, userID, invoiceID string) (*dto.PurchaseInvoiceResponse, error) {
	inv, items, err := uc.ownedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != entity.InvoiceStatusDraft {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	err = uc.txRunner.RunPurchase(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		_ repository.PayableAccountRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, it := range items {
			mov := &entity.StockMovement{
				ID:         uuid.New().String(),
				CompanyID:  inv.CompanyID,
				ProductID:  it.ProductID,
				UserID:     &userID,
				Type:       entity.MovementTypeIN,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitCost,
				SupplierID: &inv.SupplierID,
				Notes:      "Nota de compra " + inv.InvoiceNumber,
			}
			if err := uc.ledger.AppendInTx(movRepo, productRepo, mov, now); err != nil {
				return err
			}
		}
		return invoiceRepo.UpdateStatus(inv.ID, entity.InvoiceStatusFinalized, &now)
	})
	if err != nil {
		return nil, err
	}

	inv.Status = entity.InvoiceStatusFinalized
	inv.FinalizedAt = &now
	return toInvoiceResponse(inv, items, nil), nil
}

// Cancel cancela la nota. Desde DRAFT solo cambia el estado. Desde
// FINALIZED apendea una devolución RET_OUT por cada línea para revertir el
// stock (sujeto al chequeo de saldo no negativo) en la misma transacción.
// Una nota CANCELED no admite más transiciones.
func (uc *PurchaseUseCase) Cancel(ctx context.Context, userID, invoiceID string) (*dto.PurchaseInvoiceResponse, error) {
	inv, items, err := uc.ownedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == entity.InvoiceStatusCanceled {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	err = uc.txRunner.RunPurchase(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		_ repository.PayableAccountRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if inv.Status == entity.InvoiceStatusFinalized {
			// Revertir lo que la finalización metió al libro
			for _, it := range items {
				mov := &entity.StockMovement{
					ID:         uuid.New().String(),
					CompanyID:  inv.CompanyID,
					ProductID:  it.ProductID,
					UserID:     &userID,
					Type:       entity.MovementTypeRetOut,
					Quantity:   it.Quantity,
					UnitPrice:  it.UnitCost,
					SupplierID: &inv.SupplierID,
					Notes:      "Cancelación nota de compra " + inv.InvoiceNumber,
				}
				if err := uc.ledger.AppendInTx(movRepo, productRepo, mov, now); err != nil {
					return err
				}
			}
		}
		return invoiceRepo.UpdateStatus(inv.ID, entity.InvoiceStatusCanceled, inv.FinalizedAt)
	})
	if err != nil {
		return nil, err
	}

	inv.Status = entity.InvoiceStatusCanceled
	return toInvoiceResponse(inv, items, nil), nil
}

// ownedInvoice carga la nota con sus líneas verificando que pertenezca a la
// empresa activa del principal.
func (uc *PurchaseUseCase) ownedInvoice(ctx context.Context, userID, invoiceID string) (*entity.PurchaseInvoice, []*entity.PurchaseInvoiceItem, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItems(invoiceID)
	if err != nil {
		return nil, nil, err
	}
	return inv, items, nil
}
