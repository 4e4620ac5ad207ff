package repository

import "github.com/jhoicas/rentacar-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle (DIP).
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByIDAndEnterprise(id, enterpriseID string) (*entity.Vehicle, error)
	ListByEnterprise(enterpriseID string) ([]*entity.Vehicle, error)
}
