// Package analytics contiene los casos de uso de agregación: el dashboard
// del director y los contadores globales del superadmin.
package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

const (
	recentRentalsLimit = 5
	revenueChartDays   = 7
)

// DashboardUseCase arma el resumen operativo de una agencia.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No toca las
// tablas directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO de la agencia indicada.
// Las consultas independientes corren en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, enterpriseID string) (*dto.DashboardSummaryDTO, error) {
	type countsResult struct {
		revenue   int64
		active    int64
		vehicles  int64
		customers int64
		err       error
	}
	type statusResult struct {
		rows []repository.VehicleStatusCount
		err  error
	}
	type recentResult struct {
		rows []repository.RecentRental
		err  error
	}
	type chartResult struct {
		rows []repository.DailyRevenue
		err  error
	}
	type methodsResult struct {
		rows []repository.MethodTotal
		err  error
	}

	countsCh := make(chan countsResult, 1)
	statusCh := make(chan statusResult, 1)
	recentCh := make(chan recentResult, 1)
	chartCh := make(chan chartResult, 1)
	methodsCh := make(chan methodsResult, 1)

	go func() {
		var res countsResult
		res.revenue, res.err = uc.analyticsRepo.TotalRevenueCents(ctx, enterpriseID)
		if res.err == nil {
			res.active, res.err = uc.analyticsRepo.CountActiveRentals(ctx, enterpriseID)
		}
		if res.err == nil {
			res.vehicles, res.err = uc.analyticsRepo.CountVehicles(ctx, enterpriseID)
		}
		if res.err == nil {
			res.customers, res.err = uc.analyticsRepo.CountCustomers(ctx, enterpriseID)
		}
		countsCh <- res
	}()
	go func() {
		rows, err := uc.analyticsRepo.VehicleStatusDistribution(ctx, enterpriseID)
		statusCh <- statusResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.RecentRentals(ctx, enterpriseID, recentRentalsLimit)
		recentCh <- recentResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.RevenueLastDays(ctx, enterpriseID, revenueChartDays)
		chartCh <- chartResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.PaymentMethodTotals(ctx, enterpriseID)
		methodsCh <- methodsResult{rows, err}
	}()

	counts := <-countsCh
	status := <-statusCh
	recent := <-recentCh
	chart := <-chartCh
	methods := <-methodsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: indicadores: %w", counts.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: estado de flota: %w", status.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: alquileres recientes: %w", recent.err)
	}
	if chart.err != nil {
		return nil, fmt.Errorf("dashboard: serie de ingresos: %w", chart.err)
	}
	if methods.err != nil {
		return nil, fmt.Errorf("dashboard: métodos de pago: %w", methods.err)
	}

	out := &dto.DashboardSummaryDTO{
		Stats: dto.DashboardStatsDTO{
			Revenue:       dto.StatDTO{Current: float64(counts.revenue) / 100},
			ActiveRentals: dto.StatDTO{Current: float64(counts.active)},
			TotalVehicles: dto.StatDTO{Current: float64(counts.vehicles)},
			Customers:     dto.StatDTO{Current: float64(counts.customers)},
		},
		RevenueChart:   make([]dto.RevenuePointDTO, 0, len(chart.rows)),
		VehicleStatus:  make([]dto.VehicleStatusDTO, 0, len(status.rows)),
		PaymentMethods: make([]dto.PaymentMethodDTO, 0, len(methods.rows)),
		RecentRentals:  make([]dto.RecentRentalDTO, 0, len(recent.rows)),
		Alerts:         []string{},
	}

	for _, row := range chart.rows {
		rev, _ := row.Revenue.Float64()
		out.RevenueChart = append(out.RevenueChart, dto.RevenuePointDTO{
			Date:    row.Day,
			Revenue: rev,
			Rentals: row.Rentals,
		})
	}

	for _, row := range status.rows {
		out.VehicleStatus = append(out.VehicleStatus, dto.VehicleStatusDTO{
			Name:  capitalize(row.Status),
			Value: row.Count,
			Color: statusColor(row.Status),
		})
	}

	total := 0.0
	for _, row := range methods.rows {
		amount, _ := row.Amount.Float64()
		total += amount
	}
	for _, row := range methods.rows {
		amount, _ := row.Amount.Float64()
		pct := 0
		if total > 0 {
			pct = int(amount/total*100 + 0.5)
		}
		out.PaymentMethods = append(out.PaymentMethods, dto.PaymentMethodDTO{
			Method:     capitalize(row.Method),
			Amount:     amount,
			Percentage: pct,
		})
	}

	for _, row := range recent.rows {
		out.RecentRentals = append(out.RecentRentals, dto.RecentRentalDTO{
			ID:       row.ID,
			Customer: row.Customer,
			Vehicle:  row.Vehicle,
			Status:   row.Status,
			Amount:   float64(row.AmountCents) / 100,
			Date:     row.Date.Format(entity.DateLayout),
		})
	}

	return out, nil
}

// PlatformStats devuelve los contadores globales del panel superadmin.
func (uc *DashboardUseCase) PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	stats, err := uc.analyticsRepo.PlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats de plataforma: %w", err)
	}
	return &dto.PlatformStatsResponse{
		Enterprises:  stats.Enterprises,
		Users:        stats.Users,
		Rentals:      stats.Rentals,
		RevenueCents: stats.RevenueCents,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func statusColor(status string) string {
	switch status {
	case entity.VehicleAvailable:
		return "#10b981"
	case entity.VehicleMaintenance:
		return "#f59e0b"
	default:
		return "#3b82f6"
	}
}
