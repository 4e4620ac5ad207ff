package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/analytics"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
)

// EnterpriseHandler panel del superadmin: agencias, cuentas y stats globales.
type EnterpriseHandler struct {
	uc          *usecase.EnterpriseUseCase
	userUC      *usecase.UserUseCase
	dashboardUC *analytics.DashboardUseCase
}

// NewEnterpriseHandler construye el handler del panel superadmin.
func NewEnterpriseHandler(uc *usecase.EnterpriseUseCase, userUC *usecase.UserUseCase, dashboardUC *analytics.DashboardUseCase) *EnterpriseHandler {
	return &EnterpriseHandler{uc: uc, userUC: userUC, dashboardUC: dashboardUC}
}

// Stats godoc
// @Summary      Contadores globales de la plataforma
// @Tags         superadmin
// @Produce      json
// @Success      200  {object}  dto.PlatformStatsResponse
// @Router       /api/superadmin/stats [get]
func (h *EnterpriseHandler) Stats(c *fiber.Ctx) error {
	out, err := h.dashboardUC.PlatformStats(c.Context())
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar agencias con contadores
// @Tags         superadmin
// @Produce      json
// @Success      200  {array}  dto.EnterpriseOverviewResponse
// @Router       /api/superadmin/enterprises [get]
func (h *EnterpriseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOverview()
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear agencia
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEnterpriseRequest  true  "name, address, status, plan"
// @Success      201   {object}  dto.EnterpriseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/superadmin/enterprises [post]
func (h *EnterpriseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEnterpriseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de una agencia
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la agencia"
// @Param        body  body  dto.UpdateEnterpriseRequest  true  "campos a modificar"
// @Success      200   {object}  dto.EnterpriseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/superadmin/enterprises/{id} [put]
func (h *EnterpriseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEnterpriseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una agencia sin usuarios
// @Tags         superadmin
// @Produce      json
// @Param        id  path  string  true  "ID de la agencia"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/superadmin/enterprises/{id} [delete]
func (h *EnterpriseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "agencia eliminada"})
}

// ListUsers godoc
// @Summary      Listar las cuentas de una agencia
// @Tags         superadmin
// @Produce      json
// @Param        id  path  string  true  "ID de la agencia"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/superadmin/enterprises/{id}/users [get]
func (h *EnterpriseHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.Params("id"))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Crear director o agent en una agencia
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "enterprise_id, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/superadmin/users [post]
func (h *EnterpriseHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EnterpriseID == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "enterprise_id, email, password y role son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.userUC.CreateForEnterprise(in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
