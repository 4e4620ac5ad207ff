package auth

// Mailer es el contrato mínimo que necesita el flujo de recuperación de
// contraseña. La implementación SMTP vive en infrastructure; la interfaz
// acá evita acoplar el caso de uso al transporte de correo.
type Mailer interface {
	// SendResetEmail envía el código de 6 dígitos y el enlace de reset.
	SendResetEmail(to, code, resetLink string) error
}
