package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// CustomerResponse representación pública de un cliente.
type CustomerResponse struct {
	ID           string    `json:"id"`
	EnterpriseID string    `json:"enterprise_id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateVehicleRequest alta de vehículo.
type CreateVehicleRequest struct {
	Name            string `json:"name"`
	Plate           string `json:"plate"`
	DailyPriceCents int64  `json:"daily_price_cents"`
	Status          string `json:"status,omitempty"` // default: available
}

// VehicleResponse representación pública de un vehículo.
type VehicleResponse struct {
	ID              string    `json:"id"`
	EnterpriseID    string    `json:"enterprise_id"`
	Name            string    `json:"name"`
	Plate           string    `json:"plate"`
	DailyPriceCents int64     `json:"daily_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateRentalRequest alta de alquiler. Las fechas van como YYYY-MM-DD.
type CreateRentalRequest struct {
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// RentalResponse alquiler con los campos denormalizados de los listados.
type RentalResponse struct {
	ID           string    `json:"id"`
	EnterpriseID string    `json:"enterprise_id"`
	CustomerID   string    `json:"customer_id"`
	VehicleID    string    `json:"vehicle_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TotalCents   int64     `json:"total_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"full_name,omitempty"`
	VehicleName  string    `json:"vehicle_name,omitempty"`
	VehiclePlate string    `json:"plate,omitempty"`
}
