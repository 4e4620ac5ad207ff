package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de agregación sobre PostgreSQL.
// Los montos en unidades (SUM(amount_cents)/100) se escanean como
// shopspring/decimal vía el codec registrado en el pool.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// TotalRevenueCents suma todos los pagos de la agencia.
func (r *AnalyticsRepo) TotalRevenueCents(ctx context.Context, enterpriseID string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE enterprise_id = $1`,
		enterpriseID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// CountActiveRentals cuenta los alquileres activos de la agencia.
func (r *AnalyticsRepo) CountActiveRentals(ctx context.Context, enterpriseID string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM rentals WHERE enterprise_id = $1 AND status = 'active'`, enterpriseID)
}

// CountVehicles cuenta la flota de la agencia.
func (r *AnalyticsRepo) CountVehicles(ctx context.Context, enterpriseID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM vehicles WHERE enterprise_id = $1`, enterpriseID)
}

// CountCustomers cuenta los clientes de la agencia.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context, enterpriseID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers WHERE enterprise_id = $1`, enterpriseID)
}

// VehicleStatusDistribution agrupa la flota por estado.
func (r *AnalyticsRepo) VehicleStatusDistribution(ctx context.Context, enterpriseID string) ([]repository.VehicleStatusCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM vehicles WHERE enterprise_id = $1 GROUP BY status`,
		enterpriseID)
	if err != nil {
		return nil, fmt.Errorf("vehicle status distribution: %w", err)
	}
	defer rows.Close()

	var list []repository.VehicleStatusCount
	for rows.Next() {
		var row repository.VehicleStatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("scan vehicle status: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// RecentRentals devuelve los últimos alquileres con cliente y vehículo.
func (r *AnalyticsRepo) RecentRentals(ctx context.Context, enterpriseID string, limit int) ([]repository.RecentRental, error) {
	query := `
		SELECT r.id, c.full_name, v.name, r.status, r.total_cents, r.created_at
		FROM rentals r
		JOIN customers c ON r.customer_id = c.id
		JOIN vehicles v ON r.vehicle_id = v.id
		WHERE r.enterprise_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, enterpriseID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent rentals: %w", err)
	}
	defer rows.Close()

	var list []repository.RecentRental
	for rows.Next() {
		var row repository.RecentRental
		if err := rows.Scan(&row.ID, &row.Customer, &row.Vehicle, &row.Status, &row.AmountCents, &row.Date); err != nil {
			return nil, fmt.Errorf("scan recent rental: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// RevenueLastDays serie de ingresos por día de los últimos N días, en orden
// cronológico, en unidades.
func (r *AnalyticsRepo) RevenueLastDays(ctx context.Context, enterpriseID string, days int) ([]repository.DailyRevenue, error) {
	query := `
		SELECT to_char(paid_at, 'Dy') AS day, SUM(amount_cents)::numeric / 100 AS revenue, COUNT(*) AS rentals
		FROM payments
		WHERE enterprise_id = $1 AND paid_at >= NOW() - make_interval(days => $2)
		GROUP BY 1, date_trunc('day', paid_at)
		ORDER BY date_trunc('day', paid_at)`
	rows, err := r.pool.Query(ctx, query, enterpriseID, days)
	if err != nil {
		return nil, fmt.Errorf("revenue chart: %w", err)
	}
	defer rows.Close()

	var list []repository.DailyRevenue
	for rows.Next() {
		var row repository.DailyRevenue
		var revenue decimal.Decimal
		if err := rows.Scan(&row.Day, &revenue, &row.Rentals); err != nil {
			return nil, fmt.Errorf("scan revenue point: %w", err)
		}
		row.Revenue = revenue
		list = append(list, row)
	}
	return list, rows.Err()
}

// PaymentMethodTotals total cobrado por método de pago, en unidades.
func (r *AnalyticsRepo) PaymentMethodTotals(ctx context.Context, enterpriseID string) ([]repository.MethodTotal, error) {
	query := `
		SELECT method, SUM(amount_cents)::numeric / 100 AS amount, COUNT(*)
		FROM payments WHERE enterprise_id = $1 GROUP BY method`
	rows, err := r.pool.Query(ctx, query, enterpriseID)
	if err != nil {
		return nil, fmt.Errorf("payment methods: %w", err)
	}
	defer rows.Close()

	var list []repository.MethodTotal
	for rows.Next() {
		var row repository.MethodTotal
		var amount decimal.Decimal
		if err := rows.Scan(&row.Method, &amount, &row.Count); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		row.Amount = amount
		list = append(list, row)
	}
	return list, rows.Err()
}

// PlatformStats contadores globales para el panel del superadmin. Los
// alquileres cancelados no cuentan.
func (r *AnalyticsRepo) PlatformStats(ctx context.Context) (*repository.PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM enterprises),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM rentals WHERE status != 'canceled'),
			(SELECT COALESCE(SUM(amount_cents), 0) FROM payments)`
	var stats repository.PlatformStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Enterprises, &stats.Users, &stats.Rentals, &stats.RevenueCents,
	)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return &stats, nil
}

func (r *AnalyticsRepo) count(ctx context.Context, query, enterpriseID string) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, query, enterpriseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}
