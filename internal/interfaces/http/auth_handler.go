package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/auth"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
)

// AuthHandler maneja login, bootstrap y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// BootstrapSuperadmin godoc
// @Summary      Crear el primer superadmin (solo si no existe ninguno)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BootstrapSuperadminRequest  true  "email, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/bootstrap-superadmin [post]
func (h *AuthHandler) BootstrapSuperadmin(c *fiber.Ctx) error {
	var in dto.BootstrapSuperadminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	user, err := h.uc.BootstrapSuperadmin(in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ForgotPassword godoc
// @Summary      Solicitar código/enlace de recuperación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/forgot-password [post]
//
// La respuesta es la misma exista o no la cuenta.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.ForgotPassword(in); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "si la cuenta existe, enviamos un correo con las instrucciones"})
}

// VerifyReset godoc
// @Summary      Verificar código o token de recuperación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyResetRequest  true  "email y code o token"
// @Success      200   {object}  dto.VerifyResetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/verify-code [post]
func (h *AuthHandler) VerifyReset(c *fiber.Ctx) error {
	var in dto.VerifyResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.VerifyReset(in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Cambiar la contraseña con código o token vigente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "email, code o token, password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	if err := h.uc.ResetPassword(in); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// Me godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(GetIdentity(c).UserID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(user)
}
