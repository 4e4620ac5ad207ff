package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain"
)

// resetTTL vigencia del código y el enlace de recuperación.
const resetTTL = 15 * time.Minute

// ForgotPassword genera un código de 6 dígitos y un token de enlace
// independiente, los persiste con vencimiento de 15 minutos y envía el
// correo. Una segunda solicitud reemplaza en silencio a la anterior.
//
// Si el email no existe no se informa: la respuesta al caller es neutra
// en ambos casos para no filtrar qué cuentas existen.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) error {
	user, _, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}
	linkToken := uuid.New().String()
	expires := time.Now().Add(resetTTL)

	if err := uc.userRepo.SetResetProof(user.ID, code, linkToken, expires); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		uc.frontendURL, linkToken, url.QueryEscape(in.Email))
	if err := uc.mailer.SendResetEmail(in.Email, code, resetLink); err != nil {
		return fmt.Errorf("enviar correo de recuperación: %w", err)
	}
	return nil
}

// VerifyReset valida el código o el token (cualquiera de los dos) y devuelve
// el código vigente para que el frontend lo arrastre al paso final.
func (uc *AuthUseCase) VerifyReset(in dto.VerifyResetRequest) (*dto.VerifyResetResponse, error) {
	if in.Code == "" && in.Token == "" {
		return nil, domain.ErrInvalidInput
	}
	user, _, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.ResetProofValid(in.Code, in.Token, time.Now()) {
		return nil, domain.ErrResetProofInvalid
	}
	return &dto.VerifyResetResponse{OK: true, Code: user.ResetCode}, nil
}

// ResetPassword cambia la contraseña con un código o token vigente. El código
// y el token se invalidan juntos: ninguno de los dos sirve una segunda vez.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if in.Code == "" && in.Token == "" {
		return domain.ErrInvalidInput
	}
	user, _, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.ResetProofValid(in.Code, in.Token, time.Now()) {
		return domain.ErrResetProofInvalid
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

// generateResetCode produce un código numérico de 6 dígitos (100000-999999).
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
