package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/analytics"
	"github.com/jhoicas/rentacar-api/internal/application/authz"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
)

// CompanyHandler panel del director: agents de su agencia y dashboard.
type CompanyHandler struct {
	userUC      *usecase.UserUseCase
	dashboardUC *analytics.DashboardUseCase
}

// NewCompanyHandler construye el handler del panel del director.
func NewCompanyHandler(userUC *usecase.UserUseCase, dashboardUC *analytics.DashboardUseCase) *CompanyHandler {
	return &CompanyHandler{userUC: userUC, dashboardUC: dashboardUC}
}

// ListAgents godoc
// @Summary      Listar los agents de la agencia del director
// @Tags         company
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/company/users [get]
func (h *CompanyHandler) ListAgents(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if !authz.CanManageAgents(id, id.EnterpriseID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el director administra sus agents"})
	}
	out, err := h.userUC.ListAgents(id.EnterpriseID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// CreateAgent godoc
// @Summary      Crear un agent en la agencia del director
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgentRequest  true  "email, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company/users [post]
func (h *CompanyHandler) CreateAgent(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if !authz.CanManageAgents(id, id.EnterpriseID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el director administra sus agents"})
	}
	var in dto.CreateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.userUC.CreateAgent(id.EnterpriseID, in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Dashboard godoc
// @Summary      Resumen operativo de la agencia
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/company/dashboard [get]
func (h *CompanyHandler) Dashboard(c *fiber.Ctx) error {
	scope, err := authz.ResolveScope(GetIdentity(c), c.Query("enterprise_id"))
	if err != nil {
		return failDomain(c, err)
	}
	out, err := h.dashboardUC.GetSummary(c.Context(), scope)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
