package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rentacar-api/internal/application/usecase"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	apphttp "github.com/jhoicas/rentacar-api/internal/interfaces/http"
)

const otherEnterpriseID = "00000000-0000-0000-0000-00000000000b"

// fakeCustomerRepo repositorio en memoria con clientes de dos agencias.
type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers = append(f.customers, c)
	return nil
}

func (f *fakeCustomerRepo) GetByIDAndEnterprise(id, enterpriseID string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id && c.EnterpriseID == enterpriseID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListByEnterprise(enterpriseID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.EnterpriseID == enterpriseID {
			out = append(out, c)
		}
	}
	return out, nil
}

func buildCustomerApp(repo *fakeCustomerRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewCustomerHandler(usecase.NewCustomerUseCase(repo))
	statuses := &fakeStatusChecker{statuses: map[string]string{
		testEnterpriseID:  entity.EnterpriseActive,
		otherEnterpriseID: entity.EnterpriseActive,
	}}
	customers := app.Group("/api/customers",
		apphttp.AuthMiddleware(testJWTSecret, statuses),
		apphttp.RequireRole(entity.RoleSuperadmin, entity.RoleDirector, entity.RoleAgent),
	)
	customers.Post("/", handler.Create)
	customers.Get("/", handler.List)
	return app
}

func seededCustomerRepo() *fakeCustomerRepo {
	now := time.Now()
	return &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: "c1", EnterpriseID: testEnterpriseID, FullName: "Cliente Propio", CreatedAt: now},
		{ID: "c2", EnterpriseID: otherEnterpriseID, FullName: "Cliente Ajeno", CreatedAt: now},
	}}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func getCustomers(t *testing.T, app *fiber.App, token, query string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/"+query, nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Un agent que pasa el enterprise_id de otra agencia sigue viendo solo la
// suya: el parámetro se ignora para roles no superadmin.
func TestCustomers_AgentIgnoraEnterpriseAjeno(t *testing.T) {
	app := buildCustomerApp(seededCustomerRepo())
	resp := getCustomers(t, app, tokenForRole(t, entity.RoleAgent), "?enterprise_id="+otherEnterpriseID)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1, "el agent solo debe ver clientes de su agencia")
	assert.Equal(t, "Cliente Propio", list[0]["full_name"])
}

// El superadmin debe indicar la agencia explícitamente en los listados.
func TestCustomers_SuperadminSinScope_Retorna400(t *testing.T) {
	app := buildCustomerApp(seededCustomerRepo())
	resp := getCustomers(t, app, tokenForRole(t, entity.RoleSuperadmin), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_SCOPE")
}

// Con el parámetro explícito el superadmin lista cualquier agencia.
func TestCustomers_SuperadminConScope_ListaLaAgencia(t *testing.T) {
	app := buildCustomerApp(seededCustomerRepo())
	resp := getCustomers(t, app, tokenForRole(t, entity.RoleSuperadmin), "?enterprise_id="+otherEnterpriseID)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Cliente Ajeno", list[0]["full_name"])
}

// El superadmin no crea data operativa del tenant.
func TestCustomers_SuperadminNoCreaClientes(t *testing.T) {
	app := buildCustomerApp(seededCustomerRepo())
	req := httptest.NewRequest(http.MethodPost, "/api/customers/",
		jsonBody(t, map[string]string{"full_name": "Nuevo Cliente"}))
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleSuperadmin))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Un agent sí opera la data de su agencia.
func TestCustomers_AgentCreaClienteEnSuAgencia(t *testing.T) {
	repo := seededCustomerRepo()
	app := buildCustomerApp(repo)
	req := httptest.NewRequest(http.MethodPost, "/api/customers/",
		jsonBody(t, map[string]string{"full_name": "Nuevo Cliente"}))
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAgent))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, testEnterpriseID, created["enterprise_id"],
		"el cliente debe quedar en la agencia del token, no en otra")
}
