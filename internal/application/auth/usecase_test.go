package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/compras-api/internal/application/auth"
	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.Email] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.users[email], nil
}
func (f *fakeUserRepo) Update(*entity.User) error             { return nil }
func (f *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(string) error                   { return nil }

type fakeCompanyRepo struct {
	companies []*entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.companies = append(f.companies, c); return nil }
func (f *fakeCompanyRepo) GetByID(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) GetByNIT(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(*entity.Company) error             { return nil }
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Delete(string) error                      { return nil }

type fakeLinkRepo struct {
	links []*entity.CompanyUser
}

func (f *fakeLinkRepo) Create(l *entity.CompanyUser) error          { f.links = append(f.links, l); return nil }
func (f *fakeLinkRepo) GetByID(string) (*entity.CompanyUser, error) { return nil, nil }
func (f *fakeLinkRepo) GetByUserAndCompany(string, string) (*entity.CompanyUser, error) {
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

type fakeRegistrationTx struct {
	userRepo    *fakeUserRepo
	companyRepo *fakeCompanyRepo
	linkRepo    *fakeLinkRepo
}

func (f *fakeRegistrationTx) RunRegistration(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	linkRepo repository.CompanyUserRepository,
) error) error {
	return fn(f.userRepo, f.companyRepo, f.linkRepo)
}

func stubGenerate(secret, userID, issuer string, expMinutes int) (string, error) {
	return "token-de-" + userID, nil
}

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeCompanyRepo, *fakeLinkRepo) {
	t.Helper()
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	companies := &fakeCompanyRepo{}
	links := &fakeLinkRepo{}
	uc := auth.NewAuthUseCase(
		&fakeRegistrationTx{userRepo: users, companyRepo: companies, linkRepo: links},
		users,
		auth.JWTConfig{Secret: "s", ExpMinutes: 60, Issuer: "test"},
		stubGenerate,
	)
	return uc, users, companies, links
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SoloUsuario(t *testing.T) {
	uc, users, companies, links := newAuthFixture(t)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@acme.co", Password: "secreta", Name: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.co", resp.Email)
	assert.True(t, resp.IsActive)

	stored := users.users["ana@acme.co"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))

	assert.Empty(t, companies.companies, "sin datos de empresa no se crea empresa")
	assert.Empty(t, links.links)
}

// El registro fundacional crea usuario + empresa + membresía admin activa.
func TestRegister_ConEmpresaFundacional(t *testing.T) {
	uc, users, companies, links := newAuthFixture(t)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@acme.co", Password: "secreta",
		CompanyName: "Acme", CompanyNIT: "900123456",
	})
	require.NoError(t, err)

	require.Len(t, companies.companies, 1)
	assert.Equal(t, "Acme", companies.companies[0].Name)

	require.Len(t, links.links, 1)
	link := links.links[0]
	assert.Equal(t, resp.ID, link.UserID)
	assert.Equal(t, companies.companies[0].ID, link.CompanyID)
	assert.Equal(t, entity.RoleAdmin, link.Role, "el fundador es admin")
	assert.True(t, link.Active, "la empresa fundada queda activa")

	active, err := links.FindActiveByUser(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.NotNil(t, users.users["ana@acme.co"])
}

func TestRegister_EmpresaIncompleta(t *testing.T) {
	uc, _, companies, _ := newAuthFixture(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@acme.co", Password: "secreta", CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre sin NIT no alcanza para fundar empresa")
	assert.Empty(t, companies.companies)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := newAuthFixture(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@acme.co", Password: "x1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@acme.co", Password: "x2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _, _, _ := newAuthFixture(t)
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@acme.co", Password: "secreta"})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "token-de-"+reg.ID, resp.Token)
	assert.Equal(t, reg.ID, resp.User.ID)
}

func TestLogin_Rechazos(t *testing.T) {
	uc, users, _, _ := newAuthFixture(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@acme.co", Password: "secreta"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@acme.co", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	users.users["ana@acme.co"].IsActive = false
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un usuario desactivado no inicia sesión")
}
