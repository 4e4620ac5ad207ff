package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/authz"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
)

// VehicleHandler CRUD de la flota, siempre dentro del tenant resuelto.
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler de flota.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear vehículo
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVehicleRequest  true  "name, plate, daily_price_cents, status"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if !authz.CanManageFleet(id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el superadmin no opera la data de las agencias"})
	}
	var in dto.CreateVehicleRequest
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
// @Summary      Listar la flota de la agencia
// @Tags         vehicles
// @Produce      json
// @Param        enterprise_id  query  string  false  "solo superadmin"
// @Success      200  {array}  dto.VehicleResponse
// @Router       /api/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
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
