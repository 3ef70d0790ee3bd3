package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/purchasing"
	"github.com/jhoicas/compras-api/internal/application/stock"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeLinkRepo struct {
	links []*entity.CompanyUser
}

func (f *fakeLinkRepo) Create(l *entity.CompanyUser) error          { f.links = append(f.links, l); return nil }
func (f *fakeLinkRepo) GetByID(string) (*entity.CompanyUser, error) { return nil, nil }
func (f *fakeLinkRepo) GetByUserAndCompany(userID, companyID string) (*entity.CompanyUser, error) {
	for _, l := range f.links {
		if l.UserID == userID && l.CompanyID == companyID {
			return l, nil
		}
	}
	return nil, nil
}
func (f *fakeLinkRepo) FindActiveByUser(userID string) (*entity.CompanyUser, error) {
	for _, l := range f.links {
		if l.UserID == userID && l.Active {
			return l, nil
		}
	}
	return nil, nil
}
func (f *fakeLinkRepo) ListByUser(string) ([]*entity.CompanyUser, error)              { return nil, nil }
func (f *fakeLinkRepo) ListByCompany(string, int, int) ([]*entity.CompanyUser, error) { return nil, nil }
func (f *fakeLinkRepo) Update(*entity.CompanyUser) error                              { return nil }
func (f *fakeLinkRepo) DeactivateAllByUser(string) error                              { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error             { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	if p, ok := f.products[productID]; ok {
		p.Cost = cost
	}
	return nil
}
func (f *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(string) error                                       { return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetByID(string) (*entity.StockMovement, error) { return nil, nil }
func (f *fakeMovementRepo) ListByCompany(string, string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}
func (f *fakeMovementRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range f.movements {
		if m.ProductID == productID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}
func (f *fakeMovementRepo) SumByProductAsOf(productID string, asOf time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range f.movements {
		if m.ProductID == productID && !m.CreatedAt.After(asOf) {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error             { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return f.suppliers[id], nil }
func (f *fakeSupplierRepo) GetByCompanyAndNIT(string, string) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Update(*entity.Supplier) error                              { return nil }
func (f *fakeSupplierRepo) ListByCompany(string, int, int) ([]*entity.Supplier, error) { return nil, nil }
func (f *fakeSupplierRepo) Delete(string) error                                        { return nil }

type fakeCustomerRepo struct{}

func (fakeCustomerRepo) Create(*entity.Customer) error                              { return nil }
func (fakeCustomerRepo) GetByID(string) (*entity.Customer, error)                   { return nil, nil }
func (fakeCustomerRepo) Update(*entity.Customer) error                              { return nil }
func (fakeCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) { return nil, nil }
func (fakeCustomerRepo) Delete(string) error                                        { return nil }

type fakeInvoiceRepo struct {
	invoices map[string]*entity.PurchaseInvoice
	items    map[string][]*entity.PurchaseInvoiceItem
}

func (f *fakeInvoiceRepo) Create(inv *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) error {
	f.invoices[inv.ID] = inv
	f.items[inv.ID] = items
	return nil
}
func (f *fakeInvoiceRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	return f.invoices[id], nil
}
func (f *fakeInvoiceRepo) GetItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error) {
	return f.items[invoiceID], nil
}
func (f *fakeInvoiceRepo) GetByNumber(companyID, supplierID, invoiceNumber string) (*entity.PurchaseInvoice, error) {
	for _, inv := range f.invoices {
		if inv.CompanyID == companyID && inv.SupplierID == supplierID && inv.InvoiceNumber == invoiceNumber {
			return inv, nil
		}
	}
	return nil, nil
}
func (f *fakeInvoiceRepo) UpdateStatus(id, status string, finalizedAt *time.Time) error {
	if inv, ok := f.invoices[id]; ok {
		inv.Status = status
		if finalizedAt != nil {
			inv.FinalizedAt = finalizedAt
		}
	}
	return nil
}
func (f *fakeInvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseInvoice, error) {
	var out []*entity.PurchaseInvoice
	for _, inv := range f.invoices {
		if inv.CompanyID == companyID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakePayableRepo struct {
	payables []*entity.PayableAccount
}

func (f *fakePayableRepo) Create(p *entity.PayableAccount) error {
	f.payables = append(f.payables, p)
	return nil
}
func (f *fakePayableRepo) GetByID(id string) (*entity.PayableAccount, error) {
	for _, p := range f.payables {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePayableRepo) ListByInvoice(invoiceID string) ([]*entity.PayableAccount, error) {
	var out []*entity.PayableAccount
	for _, p := range f.payables {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePayableRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.PayableAccount, error) {
	var out []*entity.PayableAccount
	for _, p := range f.payables {
		if p.CompanyID != companyID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePayableRepo) Update(p *entity.PayableAccount) error { return nil }
func (f *fakePayableRepo) MarkOverdue(companyID string, asOf time.Time) (int64, error) {
	var n int64
	for _, p := range f.payables {
		if p.CompanyID == companyID && p.Status == entity.PayableStatusPending && p.DueDate.Before(asOf) {
			p.Status = entity.PayableStatusOverdue
			n++
		}
	}
	return n, nil
}

// fakeTxRunner cubre los dos puertos transaccionales ejecutando el
// callback directo sobre los fakes en memoria.
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	payableRepo *fakePayableRepo
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (f *fakeTxRunner) RunPurchase(ctx context.Context, fn func(
	invoiceRepo repository.PurchaseInvoiceRepository,
	payableRepo repository.PayableAccountRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.invoiceRepo, f.payableRepo, f.movRepo, f.productRepo)
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movRepo, f.productRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	userID     = "00000000-0000-0000-0000-0000000000aa"
	companyID  = "00000000-0000-0000-0000-0000000000bb"
	supplierID = "00000000-0000-0000-0000-0000000000cc"
	productAID = "00000000-0000-0000-0000-0000000000d1"
	productBID = "00000000-0000-0000-0000-0000000000d2"
)

type fixture struct {
	uc       *purchasing.PurchaseUseCase
	payables *purchasing.PayableUseCase
	movRepo  *fakeMovementRepo
	ledger   *stock.LedgerUseCase
	invoices *fakeInvoiceRepo
	accounts *fakePayableRepo
	products *fakeProductRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	links := &fakeLinkRepo{links: []*entity.CompanyUser{
		{ID: "l1", UserID: userID, CompanyID: companyID, Role: entity.RoleAdmin, Active: true},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		productAID: {ID: productAID, CompanyID: companyID, SKU: "A", Name: "Tornillo", Cost: decimal.Zero},
		productBID: {ID: productBID, CompanyID: companyID, SKU: "B", Name: "Tuerca", Cost: decimal.Zero},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		supplierID: {ID: supplierID, CompanyID: companyID, Name: "Ferretería Sur", NIT: "900123"},
	}}
	invoices := &fakeInvoiceRepo{
		invoices: map[string]*entity.PurchaseInvoice{},
		items:    map[string][]*entity.PurchaseInvoiceItem{},
	}
	accounts := &fakePayableRepo{}
	movRepo := &fakeMovementRepo{}

	resolver := tenant.NewResolver(links)
	runner := &fakeTxRunner{
		invoiceRepo: invoices,
		payableRepo: accounts,
		movRepo:     movRepo,
		productRepo: products,
	}
	ledger := stock.NewLedgerUseCase(runner, resolver, products, movRepo, suppliers, fakeCustomerRepo{})

	return &fixture{
		uc:       purchasing.NewPurchaseUseCase(runner, resolver, ledger, suppliers, products, invoices, accounts),
		payables: purchasing.NewPayableUseCase(resolver, accounts),
		movRepo:  movRepo,
		ledger:   ledger,
		invoices: invoices,
		accounts: accounts,
		products: products,
	}
}

func validRequest() dto.CreatePurchaseInvoiceRequest {
	issue := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	return dto.CreatePurchaseInvoiceRequest{
		SupplierID:    supplierID,
		InvoiceNumber: "FC-001",
		IssueDate:     issue,
		Items: []dto.PurchaseItemInput{
			{ProductID: productAID, Quantity: decimal.NewFromInt(3), UnitCost: decimal.NewFromInt(100)},
			{ProductID: productBID, Quantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(50)},
		},
		Installments: []dto.InstallmentInput{
			{DueDate: issue.AddDate(0, 1, 0), Amount: decimal.NewFromInt(200)},
			{DueDate: issue.AddDate(0, 2, 0), Amount: decimal.NewFromInt(100)},
			{DueDate: issue.AddDate(0, 3, 0), Amount: decimal.NewFromInt(100)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

// La nota nace en DRAFT con cabezal, líneas y cuotas persistidos juntos y
// el total recalculado en el servidor.
func TestCreate_NotaCompletaEnDraft(t *testing.T) {
	fx := newFixture(t)

	resp, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusDraft, resp.Status)
	assert.Equal(t, companyID, resp.CompanyID)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(400)), "3*100 + 2*50 = 400, got %s", resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].TotalCost.Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.Items[1].TotalCost.Equal(decimal.NewFromInt(100)))
	require.Len(t, resp.Installments, 3)
	for _, ins := range resp.Installments {
		assert.Equal(t, entity.PayableStatusPending, ins.Status)
	}

	assert.Len(t, fx.invoices.invoices, 1)
	assert.Len(t, fx.invoices.items[resp.ID], 2)
	assert.Len(t, fx.accounts.payables, 3)
	for _, p := range fx.accounts.payables {
		assert.Equal(t, companyID, p.CompanyID, "las cuotas heredan la empresa de la nota")
	}
	assert.Empty(t, fx.movRepo.movements, "crear en DRAFT no toca el libro")
}

func TestCreate_NumeroDuplicadoPorProveedor(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)

	_, err = fx.uc.Create(context.Background(), userID, validRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Una línea o cuota inválida rechaza la nota COMPLETA: ni cabezal, ni
// líneas, ni cuotas llegan a persistirse (todo o nada).
func TestCreate_ValidaEntrada(t *testing.T) {
	fx := newFixture(t)

	req := validRequest()
	req.Items = nil
	_, err := fx.uc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas no hay nota")

	req = validRequest()
	req.Items[0].Quantity = decimal.Zero
	_, err = fx.uc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero en línea")

	req = validRequest()
	req.Installments[0].Amount = decimal.Zero
	_, err = fx.uc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cuota sin monto")

	assert.Empty(t, fx.invoices.invoices, "ningún cabezal debe persistirse")
	assert.Empty(t, fx.invoices.items, "ninguna línea debe persistirse")
	assert.Empty(t, fx.accounts.payables, "ninguna cuota debe persistirse")
}

func TestCreate_ProveedorAjeno(t *testing.T) {
	fx := newFixture(t)

	req := validRequest()
	req.SupplierID = "proveedor-inexistente"
	_, err := fx.uc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ProductoDeOtraEmpresa(t *testing.T) {
	fx := newFixture(t)
	fx.products.products["ajeno"] = &entity.Product{ID: "ajeno", CompanyID: "otra-empresa", SKU: "X"}

	req := validRequest()
	req.Items[0].ProductID = "ajeno"
	_, err := fx.uc.Create(context.Background(), userID, req)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

// Finalizar apendea una entrada IN por línea y recalcula el costo promedio.
func TestFinalize_AlimentaElLibro(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)

	resp, err := fx.uc.Finalize(context.Background(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusFinalized, resp.Status)
	require.NotNil(t, resp.FinalizedAt)

	require.Len(t, fx.movRepo.movements, 2, "una entrada IN por línea")
	for _, m := range fx.movRepo.movements {
		assert.Equal(t, entity.MovementTypeIN, m.Type)
		assert.True(t, m.Quantity.GreaterThan(decimal.Zero))
		require.NotNil(t, m.SupplierID)
		assert.Equal(t, supplierID, *m.SupplierID)
	}

	stockA, err := fx.movRepo.SumByProduct(productAID)
	require.NoError(t, err)
	assert.True(t, stockA.Equal(decimal.NewFromInt(3)))

	assert.True(t, fx.products.products[productAID].Cost.Equal(decimal.NewFromInt(100)),
		"la entrada fija el costo promedio del producto")
	assert.True(t, fx.products.products[productBID].Cost.Equal(decimal.NewFromInt(50)))
}

func TestFinalize_SoloDesdeDraft(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)
	_, err = fx.uc.Finalize(context.Background(), userID, created.ID)
	require.NoError(t, err)

	_, err = fx.uc.Finalize(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "FINALIZED no vuelve a finalizarse")
	assert.Len(t, fx.movRepo.movements, 2, "el segundo intento no duplica entradas")
}

// Cancelar un DRAFT solo cambia el estado: el libro nunca se tocó.
func TestCancel_DraftNoTocaElLibro(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)

	resp, err := fx.uc.Cancel(context.Background(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusCanceled, resp.Status)
	assert.Empty(t, fx.movRepo.movements)
}

// Cancelar una nota FINALIZED revierte el stock con devoluciones RET_OUT.
func TestCancel_FinalizedRevierteElStock(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)
	_, err = fx.uc.Finalize(context.Background(), userID, created.ID)
	require.NoError(t, err)

	resp, err := fx.uc.Cancel(context.Background(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusCanceled, resp.Status)

	require.Len(t, fx.movRepo.movements, 4, "2 entradas IN + 2 devoluciones RET_OUT")
	reversals := fx.movRepo.movements[2:]
	for _, m := range reversals {
		assert.Equal(t, entity.MovementTypeRetOut, m.Type)
		assert.True(t, m.Quantity.LessThan(decimal.Zero), "las devoluciones se guardan negativas")
	}

	stockA, _ := fx.movRepo.SumByProduct(productAID)
	stockB, _ := fx.movRepo.SumByProduct(productBID)
	assert.True(t, stockA.IsZero(), "el stock del producto A vuelve a cero")
	assert.True(t, stockB.IsZero(), "el stock del producto B vuelve a cero")
}

// Si parte del stock ya salió, la reversión dejaría saldo negativo y la
// cancelación completa debe rechazarse.
func TestCancel_FinalizedConStockConsumidoFalla(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)
	_, err = fx.uc.Finalize(context.Background(), userID, created.ID)
	require.NoError(t, err)

	// Consumir 2 de las 3 unidades del producto A
	_, err = fx.ledger.RegisterMovement(context.Background(), userID, dto.RegisterMovementRequest{
		ProductID: productAID,
		Type:      entity.MovementTypeOUT,
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	_, err = fx.uc.Cancel(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCancel_CanceladaNoTransiciona(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)
	_, err = fx.uc.Cancel(context.Background(), userID, created.ID)
	require.NoError(t, err)

	_, err = fx.uc.Cancel(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = fx.uc.Finalize(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuentas por pagar
// ──────────────────────────────────────────────────────────────────────────────

func TestPay_CuotaPendiente(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.uc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)
	cuota := created.Installments[0]

	paid, err := fx.payables.Pay(context.Background(), userID, cuota.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.PayableStatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)

	_, err = fx.payables.Pay(context.Background(), userID, cuota.ID, nil)
	assert.ErrorIs(t, err, domain.ErrConflict, "una cuota PAID no se paga dos veces")
}

func TestPay_CuotaAjena(t *testing.T) {
	fx := newFixture(t)
	fx.accounts.payables = append(fx.accounts.payables, &entity.PayableAccount{
		ID: "ajena", CompanyID: "otra-empresa", Status: entity.PayableStatusPending,
	})

	_, err := fx.payables.Pay(context.Background(), userID, "ajena", nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMarkOverdue_SoloPendientesVencidas(t *testing.T) {
	fx := newFixture(t)
	ayer := time.Now().Add(-24 * time.Hour)
	mañana := time.Now().Add(24 * time.Hour)
	fx.accounts.payables = []*entity.PayableAccount{
		{ID: "p1", CompanyID: companyID, DueDate: ayer, Status: entity.PayableStatusPending},
		{ID: "p2", CompanyID: companyID, DueDate: mañana, Status: entity.PayableStatusPending},
		{ID: "p3", CompanyID: companyID, DueDate: ayer, Status: entity.PayableStatusPaid},
		{ID: "p4", CompanyID: "otra-empresa", DueDate: ayer, Status: entity.PayableStatusPending},
	}

	n, err := fx.payables.MarkOverdue(context.Background(), userID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "solo la PENDING vencida de la empresa activa cambia")
	assert.Equal(t, entity.PayableStatusOverdue, fx.accounts.payables[0].Status)
	assert.Equal(t, entity.PayableStatusPending, fx.accounts.payables[1].Status)
	assert.Equal(t, entity.PayableStatusPaid, fx.accounts.payables[2].Status)
	assert.Equal(t, entity.PayableStatusPending, fx.accounts.payables[3].Status)
}

func TestListPayables_FiltraPorEstado(t *testing.T) {
	fx := newFixture(t)
	fx.accounts.payables = []*entity.PayableAccount{
		{ID: "p1", CompanyID: companyID, Status: entity.PayableStatusPending},
		{ID: "p2", CompanyID: companyID, Status: entity.PayableStatusPaid},
	}

	out, err := fx.payables.List(context.Background(), userID, entity.PayableStatusPaid, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)

	_, err = fx.payables.List(context.Background(), userID, "BOGUS", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
