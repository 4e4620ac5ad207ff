package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

// EnterpriseUseCase administra el ciclo de vida de las agencias (superadmin).
type EnterpriseUseCase struct {
	repo     repository.EnterpriseRepository
	userRepo repository.UserRepository
}

// NewEnterpriseUseCase construye el caso de uso con sus puertos.
func NewEnterpriseUseCase(repo repository.EnterpriseRepository, userRepo repository.UserRepository) *EnterpriseUseCase {
	return &EnterpriseUseCase{repo: repo, userRepo: userRepo}
}

// Create da de alta una agencia. Status y plan toman defaults si vienen vacíos.
func (uc *EnterpriseUseCase) Create(in dto.CreateEnterpriseRequest) (*dto.EnterpriseResponse, error) {
	if len(in.Name) < 2 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EnterpriseActive
	}
	if status != entity.EnterpriseActive && status != entity.EnterpriseSuspended {
		return nil, domain.ErrInvalidInput
	}
	plan := in.Plan
	if plan == "" {
		plan = entity.PlanFree
	}
	if plan != entity.PlanFree && plan != entity.PlanPro && plan != entity.PlanEnterprise {
		return nil, domain.ErrInvalidInput
	}
	ent := &entity.Enterprise{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Status:    status,
		Plan:      plan,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ent); err != nil {
		return nil, err
	}
	return toEnterpriseResponse(ent), nil
}

// ListOverview devuelve todas las agencias con contadores, para el superadmin.
func (uc *EnterpriseUseCase) ListOverview() ([]*dto.EnterpriseOverviewResponse, error) {
	list, err := uc.repo.ListOverview()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EnterpriseOverviewResponse, 0, len(list))
	for _, e := range list {
		out = append(out, &dto.EnterpriseOverviewResponse{
			EnterpriseResponse: *toEnterpriseResponse(&e.Enterprise),
			DirectorsCount:     e.DirectorsCount,
			AgentsCount:        e.AgentsCount,
			VehiclesCount:      e.VehiclesCount,
			CustomersCount:     e.CustomersCount,
			RentalsCount:       e.RentalsCount,
			RevenueCents:       e.RevenueCents,
		})
	}
	return out, nil
}

// Update aplica una actualización parcial. Sin campos presentes es inválida;
// una agencia inexistente devuelve ErrNotFound.
func (uc *EnterpriseUseCase) Update(id string, in dto.UpdateEnterpriseRequest) (*dto.EnterpriseResponse, error) {
	if in.Name == nil && in.Address == nil && in.Status == nil && in.Plan == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil && len(*in.Name) < 2 {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil && *in.Status != entity.EnterpriseActive && *in.Status != entity.EnterpriseSuspended {
		return nil, domain.ErrInvalidInput
	}
	if in.Plan != nil && *in.Plan != entity.PlanFree && *in.Plan != entity.PlanPro && *in.Plan != entity.PlanEnterprise {
		return nil, domain.ErrInvalidInput
	}
	ent, err := uc.repo.Update(id, repository.EnterprisePatch{
		Name:    in.Name,
		Address: in.Address,
		Status:  in.Status,
		Plan:    in.Plan,
	})
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrNotFound
	}
	return toEnterpriseResponse(ent), nil
}

// Delete elimina una agencia solo si no tiene usuarios asociados. Con
// usuarios vigentes el borrado se bloquea: suspender es el camino.
func (uc *EnterpriseUseCase) Delete(id string) error {
	count, err := uc.repo.CountUsers(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	ent, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ent == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListUsers lista las cuentas de una agencia (vista del superadmin).
func (uc *EnterpriseUseCase) ListUsers(enterpriseID string) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.ListByEnterprise(enterpriseID, "")
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

func toEnterpriseResponse(e *entity.Enterprise) *dto.EnterpriseResponse {
	return &dto.EnterpriseResponse{
		ID:        e.ID,
		Name:      e.Name,
		Address:   e.Address,
		Status:    e.Status,
		Plan:      e.Plan,
		CreatedAt: e.CreatedAt,
	}
}
