package dto

// StatDTO valor actual de un indicador más la comparación con el período
// anterior (previous/change quedan en cero hasta tener histórico).
type StatDTO struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
}

// DashboardStatsDTO indicadores principales del dashboard del director.
type DashboardStatsDTO struct {
	Revenue       StatDTO `json:"revenue"`
	ActiveRentals StatDTO `json:"activeRentals"`
	TotalVehicles StatDTO `json:"totalVehicles"`
	Customers     StatDTO `json:"customers"`
}

// RevenuePointDTO punto de la serie de ingresos (últimos 7 días).
type RevenuePointDTO struct {
	Date    string  `json:"date"` // abreviatura del día
	Revenue float64 `json:"revenue"`
	Rentals int64   `json:"rentals"`
}

// VehicleStatusDTO porción del gráfico de estado de flota.
type VehicleStatusDTO struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// PaymentMethodDTO desglose por método de pago.
type PaymentMethodDTO struct {
	Method     string  `json:"method"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// RecentRentalDTO fila del widget de alquileres recientes.
type RecentRentalDTO struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Vehicle  string  `json:"vehicle"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"` // en unidades, no centavos
	Date     string  `json:"date"`   // YYYY-MM-DD
}

// DashboardSummaryDTO respuesta completa de GET /api/company/dashboard.
type DashboardSummaryDTO struct {
	Stats          DashboardStatsDTO  `json:"stats"`
	RevenueChart   []RevenuePointDTO  `json:"revenueChart"`
	VehicleStatus  []VehicleStatusDTO `json:"vehicleStatus"`
	PaymentMethods []PaymentMethodDTO `json:"paymentMethods"`
	RecentRentals  []RecentRentalDTO  `json:"recentRentals"`
	Alerts         []string           `json:"alerts"`
}
