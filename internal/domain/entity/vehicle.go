package entity

import "time"

// Estados válidos para Vehicle.
const (
	VehicleAvailable   = "available"
	VehicleMaintenance = "maintenance"
)

// Vehicle representa un vehículo de la flota de la agencia.
type Vehicle struct {
	ID              string
	EnterpriseID    string
	Name            string
	Plate           string
	DailyPriceCents int64 // precio por día en centavos, siempre positivo
	Status          string
	CreatedAt       time.Time
}
