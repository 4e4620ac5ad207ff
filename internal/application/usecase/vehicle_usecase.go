package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

// VehicleUseCase aplica reglas de negocio para la flota.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso con el puerto de persistencia.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create da de alta un vehículo. El precio diario debe ser positivo.
func (uc *VehicleUseCase) Create(enterpriseID string, in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if len(in.Name) < 2 || len(in.Plate) < 3 || in.DailyPriceCents <= 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.VehicleAvailable
	}
	if status != entity.VehicleAvailable && status != entity.VehicleMaintenance {
		return nil, domain.ErrInvalidInput
	}
	vehicle := &entity.Vehicle{
		ID:              uuid.New().String(),
		EnterpriseID:    enterpriseID,
		Name:            in.Name,
		Plate:           in.Plate,
		DailyPriceCents: in.DailyPriceCents,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// List devuelve la flota de la agencia, más recientes primero.
func (uc *VehicleUseCase) List(enterpriseID string) ([]*dto.VehicleResponse, error) {
	list, err := uc.repo.ListByEnterprise(enterpriseID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVehicleResponse(v))
	}
	return out, nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:              v.ID,
		EnterpriseID:    v.EnterpriseID,
		Name:            v.Name,
		Plate:           v.Plate,
		DailyPriceCents: v.DailyPriceCents,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}
