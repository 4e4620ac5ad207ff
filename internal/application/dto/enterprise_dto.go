package dto

import "time"

// CreateEnterpriseRequest alta de agencia (superadmin).
type CreateEnterpriseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"` // default: active
	Plan    string `json:"plan,omitempty"`   // default: Free
}

// UpdateEnterpriseRequest actualización parcial: solo los campos presentes.
type UpdateEnterpriseRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Status  *string `json:"status,omitempty"`
	Plan    *string `json:"plan,omitempty"`
}

// EnterpriseResponse representación pública de una agencia.
type EnterpriseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

// EnterpriseOverviewResponse agencia más contadores para el listado del superadmin.
type EnterpriseOverviewResponse struct {
	EnterpriseResponse
	DirectorsCount int64 `json:"directors_count"`
	AgentsCount    int64 `json:"agents_count"`
	VehiclesCount  int64 `json:"vehicles_count"`
	CustomersCount int64 `json:"customers_count"`
	RentalsCount   int64 `json:"rentals_count"`
	RevenueCents   int64 `json:"revenue_cents"`
}

// PlatformStatsResponse contadores globales del panel superadmin.
type PlatformStatsResponse struct {
	Enterprises  int64 `json:"enterprises"`
	Users        int64 `json:"users"`
	Rentals      int64 `json:"rentals"`
	RevenueCents int64 `json:"revenue_cents"`
}

// CreateUserRequest alta de director/agent en una agencia (superadmin).
type CreateUserRequest struct {
	EnterpriseID string `json:"enterprise_id"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"` // director | agent
}

// CreateAgentRequest alta de agent en la agencia del director.
type CreateAgentRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
