package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VehicleStatusCount distribución de la flota por estado.
type VehicleStatusCount struct {
	Status string
	Count  int64
}

// DailyRevenue ingresos de un día (en unidades, no centavos).
type DailyRevenue struct {
	Day     string // abreviatura del día (Mon, Tue, ...)
	Revenue decimal.Decimal
	Rentals int64
}

// MethodTotal total cobrado por método de pago (en unidades).
type MethodTotal struct {
	Method string
	Amount decimal.Decimal
	Count  int64
}

// RecentRental fila del widget de alquileres recientes.
type RecentRental struct {
	ID          string
	Customer    string
	Vehicle     string
	Status      string
	AmountCents int64
	Date        time.Time
}

// PlatformStats contadores globales para el panel del superadmin.
type PlatformStats struct {
	Enterprises  int64
	Users        int64
	Rentals      int64 // excluye cancelados
	RevenueCents int64
}

// AnalyticsRepository consultas read-only de agregación. Separado de los
// repositorios CRUD: ninguna de estas consultas muta estado.
type AnalyticsRepository interface {
	TotalRevenueCents(ctx context.Context, enterpriseID string) (int64, error)
	CountActiveRentals(ctx context.Context, enterpriseID string) (int64, error)
	CountVehicles(ctx context.Context, enterpriseID string) (int64, error)
	CountCustomers(ctx context.Context, enterpriseID string) (int64, error)
	VehicleStatusDistribution(ctx context.Context, enterpriseID string) ([]VehicleStatusCount, error)
	RecentRentals(ctx context.Context, enterpriseID string, limit int) ([]RecentRental, error)
	RevenueLastDays(ctx context.Context, enterpriseID string, days int) ([]DailyRevenue, error)
	PaymentMethodTotals(ctx context.Context, enterpriseID string) ([]MethodTotal, error)
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}
