package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	domstock "github.com/jhoicas/compras-api/internal/domain/stock"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// LedgerUseCase es el motor del libro de inventario: registra movimientos
// de forma transaccional con bloqueo de la fila del producto (SELECT FOR
// UPDATE) y deriva el stock actual e histórico como suma del libro.
type LedgerUseCase struct {
	txRunner     TxRunner
	resolver     *tenant.Resolver
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	resolver *tenant.Resolver,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		resolver:     resolver,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
	}
}

// RegisterMovement registra un movimiento del libro para el principal dado.
// Valida tipo y cantidad, resuelve la empresa activa, y dentro de una
// transacción bloquea la fila del producto, verifica que una salida no deje
// el saldo negativo y apendea la entrada inmutable con timestamp del
// servidor. Las entradas tipo IN recalculan el costo promedio ponderado.
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !domstock.ValidType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	// La cantidad solicitada llega en valor absoluto y debe ser positiva
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	link, err := uc.resolver.ActiveMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	companyID := link.CompanyID

	// Validar que el producto exista y sea de la empresa
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	// Referencias opcionales: proveedor/cliente deben ser de la empresa
	if in.SupplierID != nil && *in.SupplierID != "" {
		sup, _ := uc.supplierRepo.GetByID(*in.SupplierID)
		if sup == nil || sup.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	if in.CustomerID != nil && *in.CustomerID != "" {
		cust, _ := uc.customerRepo.GetByID(*in.CustomerID)
		if cust == nil || cust.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	mov := &entity.StockMovement{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		UserID:     &userID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		SupplierID: in.SupplierID,
		CustomerID: in.CustomerID,
		Notes:      in.Notes,
	}
	// Nunca se persiste un registro de tenant sin empresa resuelta
	if err := tenant.Assign(ctx, uc.resolver, userID, mov); err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		return uc.appendInTx(movRepo, productRepo, mov, time.Now())
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// AppendInTx apendea un movimiento usando repositorios ya atados a la
// transacción del caller (misma tx). Lo usa el flujo de compras para
// alimentar el libro al finalizar una nota.
func (uc *LedgerUseCase) AppendInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	mov *entity.StockMovement,
	now time.Time,
) error {
	return uc.appendInTx(movRepo, productRepo, mov, now)
}

// appendInTx: bloquea la fila del producto, normaliza el signo, verifica el
// saldo para salidas y persiste. El lock serializa los movimientos
// concurrentes del mismo producto: dos salidas no pueden leer ambas un
// saldo suficiente y comprometerse las dos.
func (uc *LedgerUseCase) appendInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	mov *entity.StockMovement,
	now time.Time,
) error {
	product, err := productRepo.GetForUpdate(mov.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	stored := domstock.NormalizeQuantity(mov.Type, mov.Quantity)

	if domstock.IsOutbound(mov.Type) {
		current, err := movRepo.SumByProduct(mov.ProductID)
		if err != nil {
			return err
		}
		if current.Add(stored).LessThan(decimal.Zero) {
			return domain.ErrInsufficientStock
		}
	}

	// Las compras (IN) actualizan el costo promedio ponderado del producto
	if mov.Type == entity.MovementTypeIN {
		current, err := movRepo.SumByProduct(mov.ProductID)
		if err != nil {
			return err
		}
		newCost := domstock.WeightedAverageCost(current, product.Cost, stored, mov.UnitPrice)
		if err := productRepo.UpdateCost(mov.ProductID, newCost); err != nil {
			return err
		}
	}

	mov.Quantity = stored
	mov.CreatedAt = now
	return movRepo.Create(mov)
}

// CurrentStock devuelve el stock actual del producto: la suma con signo de
// todas sus entradas del libro (0 si no hay movimientos).
func (uc *LedgerUseCase) CurrentStock(ctx context.Context, userID, productID string) (decimal.Decimal, error) {
	if err := uc.checkProductAccess(ctx, userID, productID); err != nil {
		return decimal.Zero, err
	}
	return uc.movementRepo.SumByProduct(productID)
}

// StockAt devuelve el stock del producto al corte asOf: la misma suma
// restringida a movimientos con created_at <= asOf. Coincide con
// CurrentStock cuando el corte cubre todos los movimientos.
func (uc *LedgerUseCase) StockAt(ctx context.Context, userID, productID string, asOf time.Time) (decimal.Decimal, error) {
	if err := uc.checkProductAccess(ctx, userID, productID); err != nil {
		return decimal.Zero, err
	}
	return uc.movementRepo.SumByProductAsOf(productID, asOf)
}

// ListMovements lista el libro de la empresa activa del principal.
// Sin empresa activa devuelve lista vacía (nunca filas de otros tenants).
func (uc *LedgerUseCase) ListMovements(ctx context.Context, userID string, in dto.MovementListRequest) ([]*dto.MovementResponse, error) {
	in.DefaultPage()
	var from, to *time.Time
	if in.From != "" {
		t, err := time.Parse(time.RFC3339, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		from = &t
	}
	if in.To != "" {
		t, err := time.Parse(time.RFC3339, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = &t
	}
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]*dto.MovementResponse, error) {
		list, err := uc.movementRepo.ListByCompany(companyID, in.ProductID, from, to, in.Limit, in.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]*dto.MovementResponse, 0, len(list))
		for _, m := range list {
			out = append(out, toMovementResponse(m))
		}
		return out, nil
	})
}

func (uc *LedgerUseCase) checkProductAccess(ctx context.Context, userID, productID string) error {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return err
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		CompanyID:  m.CompanyID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		SupplierID: m.SupplierID,
		CustomerID: m.CustomerID,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}
