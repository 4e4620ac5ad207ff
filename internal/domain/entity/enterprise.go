package entity

import "time"

// Estados válidos para Enterprise.
const (
	EnterpriseActive    = "active"
	EnterpriseSuspended = "suspended"
)

// Planes comerciales disponibles.
const (
	PlanFree       = "Free"
	PlanPro        = "Pro"
	PlanEnterprise = "Enterprise"
)

// Enterprise representa una agencia de alquiler (tenant del sistema).
// Toda la data operativa (clientes, vehículos, alquileres, pagos) se
// particiona por EnterpriseID.
type Enterprise struct {
	ID        string
	Name      string
	Address   string
	Status    string // active, suspended
	Plan      string // Free, Pro, Enterprise
	CreatedAt time.Time
}

// EnterpriseOverview es Enterprise más los contadores agregados que ve el
// superadmin en el listado.
type EnterpriseOverview struct {
	Enterprise
	DirectorsCount int64
	AgentsCount    int64
	VehiclesCount  int64
	CustomersCount int64
	RentalsCount   int64
	RevenueCents   int64
}
