package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// PurchaseUseCase maneja el ciclo de vida de las notas de compra:
// creación atómica (cabezal + líneas + cuotas), finalización que alimenta
// el libro de inventario y cancelación.
type PurchaseUseCase struct {
	txRunner     TxRunner
	resolver     *tenant.Resolver
	ledger       LedgerAppender
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.PurchaseInvoiceRepository
	payableRepo  repository.PayableAccountRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	resolver *tenant.Resolver,
	ledger LedgerAppender,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.PurchaseInvoiceRepository,
	payableRepo repository.PayableAccountRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		resolver:     resolver,
		ledger:       ledger,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		payableRepo:  payableRepo,
	}
}

// Create crea la nota de compra completa en una sola transacción:
// cabezal + líneas + cuotas se persisten todos o ninguno. El total de cada
// línea y el total del cabezal se recalculan en el servidor; los valores
// del cliente se ignoran. La nota nace en estado DRAFT.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error) {
	if in.SupplierID == "" || in.InvoiceNumber == "" || in.IssueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	link, err := uc.resolver.ActiveMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	companyID := link.CompanyID

	// Validar proveedor de la empresa
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	// Número de nota único por (empresa, proveedor)
	existing, _ := uc.invoiceRepo.GetByNumber(companyID, in.SupplierID, in.InvoiceNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	invoiceID := uuid.New().String()
	total := decimal.Zero
	items := make([]*entity.PurchaseInvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || !it.Quantity.GreaterThan(decimal.Zero) || it.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		// Total de línea calculado en el servidor
		lineTotal := it.Quantity.Mul(it.UnitCost)
		items = append(items, &entity.PurchaseInvoiceItem{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			TotalCost: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	payables := make([]*entity.PayableAccount, 0, len(in.Installments))
	for _, ins := range in.Installments {
		if ins.DueDate.IsZero() || !ins.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p := &entity.PayableAccount{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			DueDate:   ins.DueDate,
			Amount:    ins.Amount,
			Status:    entity.PayableStatusPending,
		}
		if err := tenant.Assign(ctx, uc.resolver, userID, p); err != nil {
			return nil, err
		}
		payables = append(payables, p)
	}

	inv := &entity.PurchaseInvoice{
		ID:            invoiceID,
		SupplierID:    in.SupplierID,
		InvoiceNumber: in.InvoiceNumber,
		IssueDate:     in.IssueDate,
		TotalAmount:   total,
		Status:        entity.InvoiceStatusDraft,
	}
	if err := tenant.Assign(ctx, uc.resolver, userID, inv); err != nil {
		return nil, err
	}

	// Todo o nada: cabezal, líneas y cuotas en una transacción
	err = uc.txRunner.RunPurchase(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		payableRepo repository.PayableAccountRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		if err := invoiceRepo.Create(inv, items); err != nil {
			return err
		}
		for _, p := range payables {
			if err := payableRepo.Create(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, items, payables), nil
}

// GetByID devuelve la nota con líneas y cuotas, solo si es de la empresa
// activa del principal.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, userID, invoiceID string) (*dto.PurchaseInvoiceResponse, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItems(invoiceID)
	if err != nil {
		return nil, err
	}
	payables, err := uc.payableRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items, payables), nil
}

// List lista las notas de la empresa activa del principal; sin empresa
// activa devuelve lista vacía.
func (uc *PurchaseUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]*dto.PurchaseInvoiceResponse, error) {
	page.DefaultPage()
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]*dto.PurchaseInvoiceResponse, error) {
		list, err := uc.invoiceRepo.ListByCompany(companyID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]*dto.PurchaseInvoiceResponse, 0, len(list))
		for _, inv := range list {
			out = append(out, toInvoiceResponse(inv, nil, nil))
		}
		return out, nil
	})
}

func toInvoiceResponse(inv *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem, payables []*entity.PayableAccount) *dto.PurchaseInvoiceResponse {
	resp := &dto.PurchaseInvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		SupplierID:    inv.SupplierID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		FinalizedAt:   inv.FinalizedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.PurchaseInvoiceItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			TotalCost: it.TotalCost,
		})
	}
	for _, p := range payables {
		resp.Installments = append(resp.Installments, toPayableResponse(p))
	}
	return resp
}

func toPayableResponse(p *entity.PayableAccount) dto.PayableResponse {
	return dto.PayableResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		DueDate:     p.DueDate,
		Amount:      p.Amount,
		Status:      p.Status,
		PaymentDate: p.PaymentDate,
	}
}
