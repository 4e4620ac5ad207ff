package repository

import "github.com/jhoicas/rentacar-api/internal/domain/entity"

// RentalRepository define el puerto de persistencia para Rental (DIP).
type RentalRepository interface {
	// Create persiste el alquiler. Devuelve domain.ErrConflict si el
	// constraint de exclusión detecta solapamiento de fechas para el
	// mismo vehículo (ambas escrituras concurrentes llegan a la DB y
	// exactamente una gana).
	Create(rental *entity.Rental) error
	GetByIDAndEnterprise(id, enterpriseID string) (*entity.RentalDetail, error)
	ListByEnterprise(enterpriseID string) ([]*entity.RentalDetail, error)
}
