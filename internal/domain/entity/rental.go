package entity

import "time"

// Estados válidos para Rental.
const (
	RentalActive   = "active"
	RentalDone     = "done"
	RentalCanceled = "canceled"
)

// DateLayout formato de fechas de alquiler (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Rental representa un alquiler. Customer y Vehicle deben pertenecer a la
// misma agencia que el alquiler; el solapamiento de fechas para un mismo
// vehículo activo lo rechaza la base de datos (constraint de exclusión).
type Rental struct {
	ID           string
	EnterpriseID string
	CustomerID   string
	VehicleID    string
	StartDate    time.Time
	EndDate      time.Time
	TotalCents   int64
	Status       string
	CreatedAt    time.Time
}

// RentalDetail es Rental más los campos denormalizados de los listados.
type RentalDetail struct {
	Rental
	CustomerName string
	VehicleName  string
	VehiclePlate string
}

// DaysInclusive cuenta los días del rango incluyendo ambos extremos:
// 2024-01-01 a 2024-01-03 son 3 días.
func DaysInclusive(start, end time.Time) int64 {
	return int64(end.Sub(start).Hours()/24) + 1
}
