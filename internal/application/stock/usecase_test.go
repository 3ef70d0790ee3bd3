package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-api/internal/application/dto"
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

func (f *fakeLinkRepo) Create(l *entity.CompanyUser) error            { f.links = append(f.links, l); return nil }
func (f *fakeLinkRepo) GetByID(string) (*entity.CompanyUser, error)   { return nil, nil }
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
func (f *fakeLinkRepo) ListByUser(string) ([]*entity.CompanyUser, error)          { return nil, nil }
func (f *fakeLinkRepo) ListByCompany(string, int, int) ([]*entity.CompanyUser, error) { return nil, nil }
func (f *fakeLinkRepo) Update(*entity.CompanyUser) error                          { return nil }
func (f *fakeLinkRepo) DeactivateAllByUser(string) error                          { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
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
func (f *fakeProductRepo) Delete(id string) error                                    { delete(f.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMovementRepo) ListByCompany(companyID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.CompanyID != companyID {
			continue
		}
		if productID != "" && m.ProductID != productID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
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

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) GetByCompanyAndNIT(string, string) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Update(*entity.Supplier) error                             { return nil }
func (f *fakeSupplierRepo) ListByCompany(string, int, int) ([]*entity.Supplier, error) { return nil, nil }
func (f *fakeSupplierRepo) Delete(string) error                                       { return nil }

type fakeCustomerRepo struct{}

func (fakeCustomerRepo) Create(*entity.Customer) error                             { return nil }
func (fakeCustomerRepo) GetByID(string) (*entity.Customer, error)                  { return nil, nil }
func (fakeCustomerRepo) Update(*entity.Customer) error                             { return nil }
func (fakeCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) { return nil, nil }
func (fakeCustomerRepo) Delete(string) error                                       { return nil }

// fakeTxRunner ejecuta el callback directo con los repos en memoria
// (sin transacción real).
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
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
	testUserID    = "00000000-0000-0000-0000-0000000000aa"
	testCompanyID = "00000000-0000-0000-0000-0000000000bb"
	testProductID = "00000000-0000-0000-0000-0000000000cc"
)

type fixture struct {
	uc       *stock.LedgerUseCase
	movRepo  *fakeMovementRepo
	products *fakeProductRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	links := &fakeLinkRepo{links: []*entity.CompanyUser{
		{ID: "l1", UserID: testUserID, CompanyID: testCompanyID, Role: entity.RoleAdmin, Active: true},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, CompanyID: testCompanyID, SKU: "SKU-1", Name: "Tornillo", Cost: decimal.Zero},
	}}
	movRepo := &fakeMovementRepo{}
	resolver := tenant.NewResolver(links)
	uc := stock.NewLedgerUseCase(
		&fakeTxRunner{movRepo: movRepo, productRepo: products},
		resolver, products, movRepo,
		&fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}},
		fakeCustomerRepo{},
	)
	return &fixture{uc: uc, movRepo: movRepo, products: products}
}

func (fx *fixture) register(t *testing.T, typ string, qty int64, price int64) (*dto.MovementResponse, error) {
	t.Helper()
	return fx.uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: testProductID,
		Type:      typ,
		Quantity:  decimal.NewFromInt(qty),
		UnitPrice: decimal.NewFromInt(price),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor del libro
// ──────────────────────────────────────────────────────────────────────────────

// Entrada de 50, salida de 20: stock 30. Una salida de 40 debe rechazarse
// sin dejar rastro en el libro.
func TestRegisterMovement_SalidaQueDejaSaldoNegativoSeRechaza(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.register(t, entity.MovementTypeIN, 50, 100)
	require.NoError(t, err)
	_, err = fx.register(t, entity.MovementTypeOUT, 20, 150)
	require.NoError(t, err)

	got, err := fx.uc.CurrentStock(context.Background(), testUserID, testProductID)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(30)), "50 - 20 = 30, got %s", got)

	_, err = fx.register(t, entity.MovementTypeOUT, 40, 150)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Len(t, fx.movRepo.movements, 2, "la salida rechazada no debe apendarse al libro")
	got, _ = fx.uc.CurrentStock(context.Background(), testUserID, testProductID)
	assert.True(t, got.Equal(decimal.NewFromInt(30)), "el saldo no debe cambiar tras el rechazo")
}

// Vaciar el stock exacto es válido; la unidad siguiente ya no.
func TestRegisterMovement_SalidaHastaCeroEsValida(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.register(t, entity.MovementTypeIN, 10, 100)
	require.NoError(t, err)
	_, err = fx.register(t, entity.MovementTypeOUT, 10, 100)
	require.NoError(t, err)

	got, err := fx.uc.CurrentStock(context.Background(), testUserID, testProductID)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "el stock debe quedar exactamente en cero")

	_, err = fx.register(t, entity.MovementTypeOUT, 1, 100)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// El signo lo pone el motor: las salidas quedan negativas en el libro
// aunque el cliente mande la cantidad en positivo.
func TestRegisterMovement_NormalizaElSigno(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.register(t, entity.MovementTypeIN, 5, 100)
	require.NoError(t, err)
	out, err := fx.register(t, entity.MovementTypeAdjOut, 3, 0)
	require.NoError(t, err)

	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(-3)), "la salida debe guardarse negativa")
	assert.True(t, fx.movRepo.movements[0].Quantity.Equal(decimal.NewFromInt(5)), "la entrada debe guardarse positiva")
	assert.True(t, fx.movRepo.movements[1].Quantity.Equal(decimal.NewFromInt(-3)))
}

// Cada IN recalcula el costo promedio ponderado del producto.
func TestRegisterMovement_ActualizaCostoPromedio(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.register(t, entity.MovementTypeIN, 10, 100)
	require.NoError(t, err)
	assert.True(t, fx.products.products[testProductID].Cost.Equal(decimal.NewFromInt(100)))

	_, err = fx.register(t, entity.MovementTypeIN, 10, 200)
	require.NoError(t, err)
	assert.True(t, fx.products.products[testProductID].Cost.Equal(decimal.NewFromInt(150)),
		"(10*100 + 10*200) / 20 = 150")
}

// Las salidas no tocan el costo promedio.
func TestRegisterMovement_SalidaNoTocaElCosto(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.register(t, entity.MovementTypeIN, 10, 100)
	require.NoError(t, err)
	_, err = fx.register(t, entity.MovementTypeOUT, 4, 500)
	require.NoError(t, err)

	assert.True(t, fx.products.products[testProductID].Cost.Equal(decimal.NewFromInt(100)))
}

func TestRegisterMovement_ValidaEntrada(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.register(t, "TRANSFER", 5, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera del enum")

	_, err = fx.register(t, entity.MovementTypeIN, 0, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = fx.register(t, entity.MovementTypeIN, -5, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = fx.uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: testProductID,
		Type:      entity.MovementTypeIN,
		Quantity:  decimal.NewFromInt(5),
		UnitPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestRegisterMovement_SinEmpresaActiva(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.uc.RegisterMovement(context.Background(), "usuario-sin-empresa", dto.RegisterMovementRequest{
		ProductID: testProductID,
		Type:      entity.MovementTypeIN,
		Quantity:  decimal.NewFromInt(5),
		UnitPrice: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNoActiveCompany)
	assert.Empty(t, fx.movRepo.movements, "nada debe escribirse sin empresa activa")
}

func TestRegisterMovement_ProductoDeOtraEmpresa(t *testing.T) {
	fx := newFixture(t)
	fx.products.products["ajeno"] = &entity.Product{ID: "ajeno", CompanyID: "otra-empresa", SKU: "X"}

	_, err := fx.uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: "ajeno",
		Type:      entity.MovementTypeIN,
		Quantity:  decimal.NewFromInt(5),
		UnitPrice: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El stock histórico a un corte es la suma de los movimientos hasta esa
// fecha; con el corte al final coincide con el stock actual.
func TestStockAt_CorteHistorico(t *testing.T) {
	fx := newFixture(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx.movRepo.movements = []*entity.StockMovement{
		{ID: "m1", CompanyID: testCompanyID, ProductID: testProductID, Type: entity.MovementTypeIN, Quantity: decimal.NewFromInt(50), CreatedAt: base},
		{ID: "m2", CompanyID: testCompanyID, ProductID: testProductID, Type: entity.MovementTypeOUT, Quantity: decimal.NewFromInt(-20), CreatedAt: base.Add(24 * time.Hour)},
	}

	enMedio, err := fx.uc.StockAt(context.Background(), testUserID, testProductID, base.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, enMedio.Equal(decimal.NewFromInt(50)), "antes de la salida el stock era 50")

	alFinal, err := fx.uc.StockAt(context.Background(), testUserID, testProductID, base.Add(48*time.Hour))
	require.NoError(t, err)
	actual, err := fx.uc.CurrentStock(context.Background(), testUserID, testProductID)
	require.NoError(t, err)
	assert.True(t, alFinal.Equal(actual), "el corte que cubre todo coincide con el stock actual")
}

func TestListMovements_SinEmpresaActivaDevuelveVacio(t *testing.T) {
	fx := newFixture(t)
	fx.movRepo.movements = []*entity.StockMovement{
		{ID: "m1", CompanyID: testCompanyID, ProductID: testProductID, Quantity: decimal.NewFromInt(5)},
	}

	out, err := fx.uc.ListMovements(context.Background(), "usuario-sin-empresa", dto.MovementListRequest{})
	require.NoError(t, err)
	assert.Empty(t, out, "sin empresa activa no se filtra: se devuelve vacío")
	assert.NotNil(t, out)
}
