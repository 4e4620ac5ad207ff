package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

// ReceiptGenerator genera el comprobante PDF de un alquiler. La
// implementación (maroto) vive en infrastructure.
type ReceiptGenerator interface {
	Generate(rental *entity.RentalDetail, enterpriseName string) ([]byte, error)
}

// RentalUseCase aplica las reglas de negocio de alquileres: referencias
// dentro del mismo tenant, total por días inclusivos y conflicto de
// solapamiento delegado a la base de datos.
type RentalUseCase struct {
	repo           repository.RentalRepository
	customerRepo   repository.CustomerRepository
	vehicleRepo    repository.VehicleRepository
	enterpriseRepo repository.EnterpriseRepository
	receipts       ReceiptGenerator
}

// NewRentalUseCase construye el caso de uso con sus puertos.
func NewRentalUseCase(
	repo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	enterpriseRepo repository.EnterpriseRepository,
	receipts ReceiptGenerator,
) *RentalUseCase {
	return &RentalUseCase{
		repo:           repo,
		customerRepo:   customerRepo,
		vehicleRepo:    vehicleRepo,
		enterpriseRepo: enterpriseRepo,
		receipts:       receipts,
	}
}

// Create registra un alquiler para la agencia indicada.
//
// Cliente y vehículo deben existir EN LA MISMA agencia: un ID válido de otro
// tenant responde ErrNotFound, igual que uno inexistente, para no filtrar
// datos entre agencias adivinando IDs. El total es días inclusivos por
// precio diario. El solapamiento con otro alquiler activo del mismo
// vehículo llega a la DB y vuelve como ErrConflict.
func (uc *RentalUseCase) Create(enterpriseID string, in dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	start, err := time.Parse(entity.DateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(entity.DateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByIDAndEnterprise(in.CustomerID, enterpriseID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	vehicle, err := uc.vehicleRepo.GetByIDAndEnterprise(in.VehicleID, enterpriseID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}

	rental := &entity.Rental{
		ID:           uuid.New().String(),
		EnterpriseID: enterpriseID,
		CustomerID:   in.CustomerID,
		VehicleID:    in.VehicleID,
		StartDate:    start,
		EndDate:      end,
		TotalCents:   entity.DaysInclusive(start, end) * vehicle.DailyPriceCents,
		Status:       entity.RentalActive,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(rental); err != nil {
		return nil, err
	}
	return toRentalResponse(&entity.RentalDetail{
		Rental:       *rental,
		CustomerName: customer.FullName,
		VehicleName:  vehicle.Name,
		VehiclePlate: vehicle.Plate,
	}), nil
}

// List devuelve los alquileres de la agencia con cliente y vehículo
// denormalizados, más recientes primero.
func (uc *RentalUseCase) List(enterpriseID string) ([]*dto.RentalResponse, error) {
	list, err := uc.repo.ListByEnterprise(enterpriseID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RentalResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRentalResponse(r))
	}
	return out, nil
}

// Receipt genera el comprobante PDF de un alquiler de la propia agencia.
func (uc *RentalUseCase) Receipt(enterpriseID, rentalID string) ([]byte, error) {
	rental, err := uc.repo.GetByIDAndEnterprise(rentalID, enterpriseID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrNotFound
	}
	ent, err := uc.enterpriseRepo.GetByID(enterpriseID)
	if err != nil {
		return nil, err
	}
	name := ""
	if ent != nil {
		name = ent.Name
	}
	return uc.receipts.Generate(rental, name)
}

func toRentalResponse(r *entity.RentalDetail) *dto.RentalResponse {
	return &dto.RentalResponse{
		ID:           r.ID,
		EnterpriseID: r.EnterpriseID,
		CustomerID:   r.CustomerID,
		VehicleID:    r.VehicleID,
		StartDate:    r.StartDate.Format(entity.DateLayout),
		EndDate:      r.EndDate.Format(entity.DateLayout),
		TotalCents:   r.TotalCents,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		CustomerName: r.CustomerName,
		VehicleName:  r.VehicleName,
		VehiclePlate: r.VehiclePlate,
	}
}
