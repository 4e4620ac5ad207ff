package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/authz"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
)

// RentalHandler alta, listado y comprobante PDF de alquileres.
type RentalHandler struct {
	uc *usecase.RentalUseCase
}

// NewRentalHandler construye el handler de alquileres.
func NewRentalHandler(uc *usecase.RentalUseCase) *RentalHandler {
	return &RentalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear alquiler
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRentalRequest  true  "customer_id, vehicle_id, start_date, end_date"
// @Success      201   {object}  dto.RentalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rentals [post]
//
// El solapamiento de fechas con otro alquiler activo del mismo vehículo
// responde 400 CONFLICT.
func (h *RentalHandler) Create(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if !authz.CanManageFleet(id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el superadmin no opera la data de las agencias"})
	}
	var in dto.CreateRentalRequest
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
// @Summary      Listar alquileres de la agencia
// @Tags         rentals
// @Produce      json
// @Param        enterprise_id  query  string  false  "solo superadmin"
// @Success      200  {array}  dto.RentalResponse
// @Router       /api/rentals [get]
func (h *RentalHandler) List(c *fiber.Ctx) error {
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

// Receipt godoc
// @Summary      Comprobante PDF de un alquiler
// @Tags         rentals
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del alquiler"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rentals/{id}/receipt [get]
func (h *RentalHandler) Receipt(c *fiber.Ctx) error {
	scope, err := authz.ResolveScope(GetIdentity(c), c.Query("enterprise_id"))
	if err != nil {
		return failDomain(c, err)
	}
	rentalID := c.Params("id")
	pdfBytes, err := h.uc.Receipt(scope, rentalID)
	if err != nil {
		return failDomain(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comprobante-`+rentalID+`.pdf"`)
	return c.Send(pdfBytes)
}
