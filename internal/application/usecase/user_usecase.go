package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

// UserUseCase alta y listado de cuentas director/agent.
type UserUseCase struct {
	repo           repository.UserRepository
	enterpriseRepo repository.EnterpriseRepository
}

// NewUserUseCase construye el caso de uso con sus puertos.
func NewUserUseCase(repo repository.UserRepository, enterpriseRepo repository.EnterpriseRepository) *UserUseCase {
	return &UserUseCase{repo: repo, enterpriseRepo: enterpriseRepo}
}

// CreateForEnterprise crea un director o agent para la agencia indicada
// (flujo del superadmin). El email es único global: un duplicado en
// cualquier tenant devuelve ErrEmailAlreadyExists.
func (uc *UserUseCase) CreateForEnterprise(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Role != entity.RoleDirector && in.Role != entity.RoleAgent {
		return nil, domain.ErrInvalidInput
	}
	ent, err := uc.enterpriseRepo.GetByID(in.EnterpriseID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	return uc.create(in.EnterpriseID, in.Email, in.Password, in.Role)
}

// CreateAgent crea un agent dentro de la agencia del director.
func (uc *UserUseCase) CreateAgent(enterpriseID string, in dto.CreateAgentRequest) (*dto.UserResponse, error) {
	return uc.create(enterpriseID, in.Email, in.Password, entity.RoleAgent)
}

// ListAgents lista los agents de la agencia del director.
func (uc *UserUseCase) ListAgents(enterpriseID string) ([]*dto.UserResponse, error) {
	users, err := uc.repo.ListByEnterprise(enterpriseID, entity.RoleAgent)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, &dto.UserResponse{
			ID:           u.ID,
			Email:        u.Email,
			Role:         u.Role,
			EnterpriseID: u.EnterpriseID,
			CreatedAt:    u.CreatedAt,
		})
	}
	return out, nil
}

func (uc *UserUseCase) create(enterpriseID, email, password, role string) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		EnterpriseID: enterpriseID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         user.Role,
		EnterpriseID: user.EnterpriseID,
		CreatedAt:    user.CreatedAt,
	}, nil
}
