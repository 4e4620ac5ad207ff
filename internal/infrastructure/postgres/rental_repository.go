package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

var _ repository.RentalRepository = (*RentalRepo)(nil)

// RentalRepo implementación del puerto RentalRepository sobre PostgreSQL.
type RentalRepo struct {
	pool *pgxpool.Pool
}

// NewRentalRepository construye el adaptador de persistencia para alquileres.
func NewRentalRepository(pool *pgxpool.Pool) *RentalRepo {
	return &RentalRepo{pool: pool}
}

// Create persiste un alquiler. El constraint de exclusión de la tabla
// rechaza solapamientos de fechas para el mismo vehículo activo; ese caso
// vuelve como domain.ErrConflict.
func (r *RentalRepo) Create(rental *entity.Rental) error {
	query := `
		INSERT INTO rentals (id, enterprise_id, customer_id, vehicle_id, start_date, end_date, total_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		rental.ID, rental.EnterpriseID, rental.CustomerID, rental.VehicleID,
		rental.StartDate, rental.EndDate, rental.TotalCents, rental.Status, rental.CreatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert rental: %w", err)
	}
	return nil
}

// GetByIDAndEnterprise obtiene un alquiler con cliente y vehículo
// denormalizados, filtrando por tenant.
func (r *RentalRepo) GetByIDAndEnterprise(id, enterpriseID string) (*entity.RentalDetail, error) {
	query := `
		SELECT r.id, r.enterprise_id, r.customer_id, r.vehicle_id,
		       r.start_date, r.end_date, r.total_cents, r.status, r.created_at,
		       c.full_name, v.name, v.plate
		FROM rentals r
		JOIN customers c ON c.id = r.customer_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.id = $1 AND r.enterprise_id = $2`
	var d entity.RentalDetail
	err := r.pool.QueryRow(context.Background(), query, id, enterpriseID).Scan(
		&d.ID, &d.EnterpriseID, &d.CustomerID, &d.VehicleID,
		&d.StartDate, &d.EndDate, &d.TotalCents, &d.Status, &d.CreatedAt,
		&d.CustomerName, &d.VehicleName, &d.VehiclePlate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rental: %w", err)
	}
	return &d, nil
}

// ListByEnterprise lista los alquileres de la agencia con cliente y vehículo
// denormalizados, más recientes primero.
func (r *RentalRepo) ListByEnterprise(enterpriseID string) ([]*entity.RentalDetail, error) {
	query := `
		SELECT r.id, r.enterprise_id, r.customer_id, r.vehicle_id,
		       r.start_date, r.end_date, r.total_cents, r.status, r.created_at,
		       c.full_name, v.name, v.plate
		FROM rentals r
		JOIN customers c ON c.id = r.customer_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.enterprise_id = $1
		ORDER BY r.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, enterpriseID)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()

	var list []*entity.RentalDetail
	for rows.Next() {
		var d entity.RentalDetail
		if err := rows.Scan(
			&d.ID, &d.EnterpriseID, &d.CustomerID, &d.VehicleID,
			&d.StartDate, &d.EndDate, &d.TotalCents, &d.Status, &d.CreatedAt,
			&d.CustomerName, &d.VehicleName, &d.VehiclePlate,
		); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
