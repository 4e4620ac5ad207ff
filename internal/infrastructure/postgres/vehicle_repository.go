package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository construye el adaptador de persistencia para la flota.
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{pool: pool}
}

// Create persiste un nuevo vehículo.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, enterprise_id, name, plate, daily_price_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		vehicle.ID, vehicle.EnterpriseID, vehicle.Name, vehicle.Plate,
		vehicle.DailyPriceCents, vehicle.Status, vehicle.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByIDAndEnterprise obtiene un vehículo filtrando por tenant.
func (r *VehicleRepo) GetByIDAndEnterprise(id, enterpriseID string) (*entity.Vehicle, error) {
	query := `
		SELECT id, enterprise_id, name, plate, daily_price_cents, status, created_at
		FROM vehicles WHERE id = $1 AND enterprise_id = $2`
	var v entity.Vehicle
	err := r.pool.QueryRow(context.Background(), query, id, enterpriseID).Scan(
		&v.ID, &v.EnterpriseID, &v.Name, &v.Plate, &v.DailyPriceCents, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// ListByEnterprise lista la flota de la agencia, más recientes primero.
func (r *VehicleRepo) ListByEnterprise(enterpriseID string) ([]*entity.Vehicle, error) {
	query := `
		SELECT id, enterprise_id, name, plate, daily_price_cents, status, created_at
		FROM vehicles WHERE enterprise_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, enterpriseID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.EnterpriseID, &v.Name, &v.Plate, &v.DailyPriceCents, &v.Status, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
