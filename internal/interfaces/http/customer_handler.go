package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/authz"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
)

// CustomerHandler CRUD de clientes, siempre dentro del tenant resuelto.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "full_name, phone, email"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if !authz.CanManageFleet(id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el superadmin no opera la data de las agencias"})
	}
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(id.EnterpriseID, in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes de la agencia
// @Tags         customers
// @Produce      json
// @Param        enterprise_id  query  string  false  "solo superadmin"
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	scope, err := authz.ResolveScope(GetIdentity(c), c.Query("enterprise_id"))
	if err != nil {
		return failDomain(c, err)
	}
	out, err := h.uc.List(scope)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
