package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	apphttp "github.com/jhoicas/compras-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/compras-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "compras-api-test"
	testExpMin    = 60
)

// fakeLinkRepo implementación en memoria del puerto de membresías.
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

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT del usuario
//   - TenantMiddleware que resuelve la empresa activa por membresía
//   - Una ruta plana y una ruta que exige rol admin
func buildTestApp(links ...*entity.CompanyUser) *fiber.App {
	resolver := tenant.NewResolver(&fakeLinkRepo{links: links})
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret), apphttp.TenantMiddleware(resolver))
	protected.Get("/protected", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"company_id": apphttp.GetCompanyID(c),
			"role":       apphttp.GetRole(c),
		})
	})
	protected.Get("/admin-only", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
	})
	return app
}

// tokenFor genera un JWT válido para el usuario.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin header Authorization → 401.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 2: Header con formato inválido → 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/protected", "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "/protected", "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: Token con firma incorrecta → 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -10)
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TenantMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: Token válido con membresía activa → 200 y locals completos.
func TestTenantMiddleware_PublicaEmpresaYRol(t *testing.T) {
	app := buildTestApp(&entity.CompanyUser{
		ID: "l1", UserID: testUserID, CompanyID: testCompanyID,
		Role: entity.RoleMember, Active: true,
	})

	resp := doRequest(t, app, "/protected", tokenFor(t, testUserID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, entity.RoleMember, body["role"])
}

// Caso 6: Token válido SIN membresía activa → la request pasa igual; la
// empresa queda vacía y son los casos de uso quienes deciden.
func TestTenantMiddleware_SinEmpresaActivaNoCorta(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/protected", tokenFor(t, testUserID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Empty(t, body["company_id"])
	assert.Empty(t, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 7: Admin en ruta admin → 200.
func TestRequireRole_AdminAccede(t *testing.T) {
	app := buildTestApp(&entity.CompanyUser{
		ID: "l1", UserID: testUserID, CompanyID: testCompanyID,
		Role: entity.RoleAdmin, Active: true,
	})

	resp := doRequest(t, app, "/admin-only", tokenFor(t, testUserID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 8: Member en ruta admin → 403.
func TestRequireRole_MemberRechazado(t *testing.T) {
	app := buildTestApp(&entity.CompanyUser{
		ID: "l1", UserID: testUserID, CompanyID: testCompanyID,
		Role: entity.RoleMember, Active: true,
	})

	resp := doRequest(t, app, "/admin-only", tokenFor(t, testUserID))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

// Caso 9: Sin empresa activa una ruta con rol exige elegir empresa → 409.
func TestRequireRole_SinEmpresaActiva(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/admin-only", tokenFor(t, testUserID))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NO_ACTIVE_COMPANY", body["code"])
}
