package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

// CustomerUseCase aplica reglas de negocio para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create da de alta un cliente en la agencia indicada.
func (uc *CustomerUseCase) Create(enterpriseID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if len(in.FullName) < 2 {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		EnterpriseID: enterpriseID,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Email:        in.Email,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List devuelve los clientes de la agencia, más recientes primero.
func (uc *CustomerUseCase) List(enterpriseID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByEnterprise(enterpriseID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		EnterpriseID: c.EnterpriseID,
		FullName:     c.FullName,
		Phone:        c.Phone,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
	}
}
