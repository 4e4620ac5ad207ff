package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	apphttp "github.com/jhoicas/rentacar-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/rentacar-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret    = "test-secret-key-for-unit-tests"
	testUserID       = "00000000-0000-0000-0000-000000000001"
	testEnterpriseID = "00000000-0000-0000-0000-000000000002"
	testEmail        = "director@agencia.test"
	testIssuer       = "rentacar-test"
	testExpDays      = 7
)

// fakeStatusChecker responde el estado configurado por agencia. Una agencia
// no registrada responde "" (ya no existe).
type fakeStatusChecker struct {
	statuses map[string]string
}

func (f *fakeStatusChecker) Status(_ context.Context, id string) (string, error) {
	return f.statuses[id], nil
}

func activeChecker() *fakeStatusChecker {
	return &fakeStatusChecker{statuses: map[string]string{testEnterpriseID: entity.EnterpriseActive}}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT, cargar locals y verificar la agencia
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(checker apphttp.StatusChecker, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, checker),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			id := apphttp.GetIdentity(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": id.Role,
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado. El superadmin viaja sin
// agencia; los demás con testEnterpriseID.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	enterpriseID := testEnterpriseID
	if role == entity.RoleSuperadmin {
		enterpriseID = ""
	}
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, enterpriseID, testIssuer, testExpDays)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_DirectorAccedeRutaDirector(t *testing.T) {
	app := buildTestApp(activeChecker(), entity.RoleDirector)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleDirector))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"director debe poder acceder a ruta restringida a director")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RoleDirector, body["role"])
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_AgentAccedeRutaOperativa(t *testing.T) {
	app := buildTestApp(activeChecker(), entity.RoleSuperadmin, entity.RoleDirector, entity.RoleAgent)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAgent))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"agent debe poder acceder a ruta operativa multi-rol")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_AgentBloqueadoEnRutaSuperadmin(t *testing.T) {
	app := buildTestApp(activeChecker(), entity.RoleSuperadmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAgent))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"agent no debe poder acceder a ruta restringida a superadmin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: director bloqueado en ruta solo superadmin → HTTP 403.
func TestRequireRole_DirectorBloqueadoEnRutaSuperadmin(t *testing.T) {
	app := buildTestApp(activeChecker(), entity.RoleSuperadmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleDirector))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin claim de rol → HTTP 401.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(activeChecker(), entity.RoleDirector)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "", testEnterpriseID, testIssuer, testExpDays)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(activeChecker(), entity.RoleDirector)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(activeChecker(), entity.RoleDirector)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — re-verificación del estado de la agencia
// ──────────────────────────────────────────────────────────────────────────────

// La suspensión aplica al request siguiente aunque el token siga vigente.
func TestAuthMiddleware_AgenciaSuspendida_Retorna403(t *testing.T) {
	checker := activeChecker()
	app := buildTestApp(checker, entity.RoleDirector)
	token := tokenForRole(t, entity.RoleDirector)

	resp := doRequest(t, app, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "con la agencia activa debe pasar")

	checker.statuses[testEnterpriseID] = entity.EnterpriseSuspended

	resp = doRequest(t, app, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el mismo token debe quedar bloqueado al suspender la agencia")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SUSPENDED")
}

// Una agencia eliminada también bloquea el token.
func TestAuthMiddleware_AgenciaInexistente_Retorna403(t *testing.T) {
	app := buildTestApp(&fakeStatusChecker{statuses: map[string]string{}}, entity.RoleDirector)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleDirector))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// El superadmin no tiene agencia: la verificación de estado se omite.
func TestAuthMiddleware_SuperadminSinAgencia_Pasa(t *testing.T) {
	app := buildTestApp(&fakeStatusChecker{statuses: map[string]string{}}, entity.RoleSuperadmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleSuperadmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/whoami", apphttp.AuthMiddleware(testJWTSecret, activeChecker()), func(c *fiber.Ctx) error {
		id := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{
			"user_id":       id.UserID,
			"email":         id.Email,
			"role":          id.Role,
			"enterprise_id": id.EnterpriseID,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleDirector))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, entity.RoleDirector, body["role"])
	assert.Equal(t, testEnterpriseID, body["enterprise_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, entity.RoleAgent, testEnterpriseID, testIssuer, testExpDays)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, entity.RoleAgent, claims.Role)
	assert.Equal(t, testEnterpriseID, claims.EnterpriseID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 día (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, entity.RoleDirector, testEnterpriseID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, entity.RoleDirector, testEnterpriseID, testIssuer, testExpDays)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
