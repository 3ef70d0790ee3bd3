package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// SaleUseCase registra ventas: cabezal + líneas + una salida OUT del libro
// por línea, todo o nada. Una venta que dejaría algún producto en saldo
// negativo se rechaza completa con ErrInsufficientStock.
type SaleUseCase struct {
	txRunner     TxRunner
	resolver     *tenant.Resolver
	ledger       LedgerAppender
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	resolver *tenant.Resolver,
	ledger LedgerAppender,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		resolver:     resolver,
		ledger:       ledger,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
	}
}

// Create registra la venta del principal. Valida líneas y referencias,
// recalcula los totales en el servidor y dentro de una transacción
// persiste cabezal + líneas y apendea la salida OUT de cada línea (con
// referencia al cliente). El chequeo de saldo del libro protege cada
// producto: si una sola línea no tiene stock, nada se persiste.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	link, err := uc.resolver.ActiveMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	companyID := link.CompanyID

	// Cliente opcional: si viene debe ser de la empresa
	if in.CustomerID != nil && *in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	saleID := uuid.New().String()
	total := decimal.Zero
	items := make([]*entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.LessThan(decimal.Zero) {
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
		lineTotal := it.Quantity.Mul(it.UnitPrice)
		items = append(items, &entity.SaleItem{
			ID:         uuid.New().String(),
			SaleID:     saleID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          saleID,
		CustomerID:  in.CustomerID,
		UserID:      &userID,
		TotalAmount: total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tenant.Assign(ctx, uc.resolver, userID, sale); err != nil {
		return nil, err
	}

	// Todo o nada: cabezal, líneas y salidas del libro en una transacción
	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.Create(sale, items); err != nil {
			return err
		}
		for _, it := range items {
			mov := &entity.StockMovement{
				ID:         uuid.New().String(),
				CompanyID:  sale.CompanyID,
				ProductID:  it.ProductID,
				UserID:     &userID,
				Type:       entity.MovementTypeOUT,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				CustomerID: in.CustomerID,
				Notes:      in.Notes,
			}
			if err := uc.ledger.AppendInTx(movRepo, productRepo, mov, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

// GetByID devuelve la venta con sus líneas, solo si es de la empresa
// activa del principal.
func (uc *SaleUseCase) GetByID(ctx context.Context, userID, saleID string) (*dto.SaleResponse, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// List lista las ventas de la empresa activa del principal; sin empresa
// activa devuelve lista vacía.
func (uc *SaleUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]*dto.SaleResponse, error) {
		list, err := uc.saleRepo.ListByCompany(companyID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]*dto.SaleResponse, 0, len(list))
		for _, s := range list {
			out = append(out, toSaleResponse(s, nil))
		}
		return out, nil
	})
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          sale.ID,
		CompanyID:   sale.CompanyID,
		CustomerID:  sale.CustomerID,
		TotalAmount: sale.TotalAmount,
		CreatedAt:   sale.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return resp
}
