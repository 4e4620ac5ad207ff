package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/authz"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/pkg/jwt"
)

// Locals keys para la identidad del token en Fiber.
const (
	LocalUserID       = "user_id"
	LocalEmail        = "email"
	LocalRole         = "role"
	LocalEnterpriseID = "enterprise_id"
)

// StatusChecker es el contrato mínimo que necesita el middleware para
// verificar el estado de la agencia. Lo implementa el repositorio de
// agencias; el uso de interfaz evita el import circular.
type StatusChecker interface {
	Status(ctx context.Context, id string) (string, error)
}

// AuthMiddleware valida el Bearer Token JWT, extrae la identidad a c.Locals
// y re-verifica el estado de la agencia en cada request: una suspensión
// aplica de inmediato aunque el token siga vigente.
//
// Comportamiento:
//   - 401 → token ausente, malformado, inválido o expirado.
//   - 403 → la agencia del token está suspendida o ya no existe.
//   - 503 → fallo de infraestructura al consultar el estado.
//
// El superadmin no tiene agencia, así que la verificación se omite.
func AuthMiddleware(jwtSecret string, checker StatusChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		if claims.EnterpriseID != "" {
			status, err := checker.Status(c.Context(), claims.EnterpriseID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STATUS_CHECK_FAILED", Message: "no se pudo verificar la agencia, intente más tarde"})
			}
			if status == "" {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la agencia ya no existe"})
			}
			if status == entity.EnterpriseSuspended {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SUSPENDED", Message: "la agencia está suspendida"})
			}
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalEnterpriseID, claims.EnterpriseID)
		return c.Next()
	}
}

// GetIdentity arma la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) authz.Identity {
	return authz.Identity{
		UserID:       localString(c, LocalUserID),
		Email:        localString(c, LocalEmail),
		Role:         localString(c, LocalRole),
		EnterpriseID: localString(c, LocalEnterpriseID),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
