package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más la identidad pública.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse identidad pública de una cuenta (nunca incluye el hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	EnterpriseID string    `json:"enterprise_id,omitempty"` // vacío para superadmin
	CreatedAt    time.Time `json:"created_at"`
}

// BootstrapSuperadminRequest alta del primer superadmin (solo si no existe).
type BootstrapSuperadminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest solicitud de recuperación de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyResetRequest verificación previa: se acepta el código de 6 dígitos
// o el token del enlace, cualquiera de los dos.
type VerifyResetRequest struct {
	Email string `json:"email"`
	Code  string `json:"code,omitempty"`
	Token string `json:"token,omitempty"`
}

// VerifyResetResponse confirma la prueba y devuelve el código para que el
// frontend lo reutilice en el paso de reset.
type VerifyResetResponse struct {
	OK   bool   `json:"ok"`
	Code string `json:"code"`
}

// ResetPasswordRequest cambio de contraseña con código o token vigente.
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code,omitempty"`
	Token    string `json:"token,omitempty"`
	Password string `json:"password"`
}
