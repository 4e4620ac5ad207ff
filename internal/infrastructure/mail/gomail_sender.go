// Package mail implementa el envío de correos de recuperación vía SMTP.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/rentacar-api/internal/application/auth"
	"github.com/jhoicas/rentacar-api/pkg/config"
)

// Asegura que GomailSender implementa auth.Mailer.
var _ auth.Mailer = (*GomailSender)(nil)

// GomailSender envía correos por SMTP con las credenciales de configuración.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// SendResetEmail envía el código de 6 dígitos y el enlace de reset. Ambas
// opciones valen 15 minutos; el cuerpo lo deja claro.
func (s *GomailSender) SendResetEmail(to, code, resetLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s es tu código de recuperación RentaCar", code))
	m.SetBody("text/plain", fmt.Sprintf(
		"Tu código de recuperación es: %s\n\nO abre este enlace para restablecer tu contraseña: %s\n\nAmbas opciones valen por 15 minutos. Si no solicitaste el cambio, ignora este correo.",
		code, resetLink,
	))
	m.AddAlternative("text/html", resetHTML(code, resetLink))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: enviar correo a %s: %w", to, err)
	}
	return nil
}

func resetHTML(code, resetLink string) string {
	return fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 500px; margin: 0 auto; padding: 40px;">
  <h1 style="color: #3b82f6; text-align: center;">RentaCar</h1>
  <h2 style="text-align: center;">Restablecer contraseña</h2>
  <p style="color: #4b5563; text-align: center;">
    Elige una de las dos opciones. El enlace y el código valen por <strong>15 minutos</strong>.
  </p>
  <p style="text-align: center;">
    <a href="%s" style="display: inline-block; background: #3b82f6; color: white; text-decoration: none; padding: 14px 32px; border-radius: 12px; font-weight: 600;">Restablecer mi contraseña</a>
  </p>
  <p style="text-align: center; color: #9ca3af;">O usa este código:</p>
  <p style="text-align: center; font-family: monospace; font-size: 36px; letter-spacing: 8px; color: #1e40af;">%s</p>
  <p style="font-size: 12px; color: #9ca3af; text-align: center;">
    Si no solicitaste este cambio, puedes ignorar este correo.
  </p>
</div>`, resetLink, code)
}
