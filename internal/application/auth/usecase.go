package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
	"github.com/jhoicas/rentacar-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase casos de uso de autenticación: login, bootstrap del primer
// superadmin y recuperación de contraseña.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	mailer      Mailer
	jwtCfg      JWTConfig
	frontendURL string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig, frontendURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, frontendURL: frontendURL}
}

// Login verifica credenciales, rechaza tenants suspendidos y genera el JWT.
// La suspensión se evalúa antes que la contraseña: una agencia suspendida
// recibe 403 siempre, sin filtrar si la contraseña era correcta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, enterpriseStatus, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleSuperadmin && enterpriseStatus == entity.EnterpriseSuspended {
		return nil, domain.ErrSuspended
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, user.EnterpriseID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// BootstrapSuperadmin crea el primer superadmin. Falla con ErrConflict si ya
// existe uno: es una ruta de arranque, no un registro abierto.
func (uc *AuthUseCase) BootstrapSuperadmin(in dto.BootstrapSuperadminRequest) (*dto.UserResponse, error) {
	exists, err := uc.userRepo.HasSuperadmin()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperadmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Me devuelve la identidad pública de la cuenta autenticada.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		EnterpriseID: u.EnterpriseID,
		CreatedAt:    u.CreatedAt,
	}
}
