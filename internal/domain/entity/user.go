package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperadmin = "superadmin"
	RoleDirector   = "director"
	RoleAgent      = "agent"
)

// User representa una cuenta del sistema. EnterpriseID es vacío solo para
// superadmin; director y agent pertenecen a exactamente una agencia.
type User struct {
	ID           string
	EnterpriseID string // vacío = superadmin (NULL en DB)
	Email        string // único global, entre todos los tenants
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string // superadmin, director, agent
	CreatedAt    time.Time

	// Recuperación de contraseña: código de 6 dígitos + token del enlace,
	// ambos con el mismo vencimiento absoluto. Se invalidan juntos.
	ResetCode      string
	ResetLinkToken string
	ResetExpires   *time.Time
}

// ResetProofValid informa si el código o el token dado coincide con el
// registrado y aún no vence. Acepta cualquiera de las dos pruebas.
func (u *User) ResetProofValid(code, token string, now time.Time) bool {
	if u.ResetExpires == nil || now.After(*u.ResetExpires) {
		return false
	}
	if code != "" && code == u.ResetCode {
		return true
	}
	return token != "" && token == u.ResetLinkToken
}
