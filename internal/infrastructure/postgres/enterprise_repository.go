package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

// Asegura que EnterpriseRepo implementa repository.EnterpriseRepository.
var _ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)

// EnterpriseRepo implementación del puerto EnterpriseRepository sobre PostgreSQL.
type EnterpriseRepo struct {
	pool *pgxpool.Pool
}

// NewEnterpriseRepository construye el adaptador de persistencia para agencias.
func NewEnterpriseRepository(pool *pgxpool.Pool) *EnterpriseRepo {
	return &EnterpriseRepo{pool: pool}
}

// Create persiste una nueva agencia.
func (r *EnterpriseRepo) Create(enterprise *entity.Enterprise) error {
	query := `
		INSERT INTO enterprises (id, name, address, status, plan, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		enterprise.ID, enterprise.Name, enterprise.Address,
		enterprise.Status, enterprise.Plan, enterprise.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enterprise: %w", err)
	}
	return nil
}

// GetByID obtiene una agencia por ID.
func (r *EnterpriseRepo) GetByID(id string) (*entity.Enterprise, error) {
	query := `
		SELECT id, name, address, status, plan, created_at
		FROM enterprises WHERE id = $1`
	var e entity.Enterprise
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Address, &e.Status, &e.Plan, &e.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enterprise: %w", err)
	}
	return &e, nil
}

// Update aplica solo los campos presentes del patch (SET dinámico).
// Devuelve nil si la agencia no existe.
func (r *EnterpriseRepo) Update(id string, patch repository.EnterprisePatch) (*entity.Enterprise, error) {
	sets := []string{}
	params := []interface{}{id}
	add := func(column string, value interface{}) {
		params = append(params, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(params)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Plan != nil {
		add("plan", *patch.Plan)
	}
	if len(sets) == 0 {
		return r.GetByID(id)
	}

	query := fmt.Sprintf(`
		UPDATE enterprises SET %s WHERE id = $1
		RETURNING id, name, address, status, plan, created_at`, strings.Join(sets, ", "))
	var e entity.Enterprise
	err := r.pool.QueryRow(context.Background(), query, params...).Scan(
		&e.ID, &e.Name, &e.Address, &e.Status, &e.Plan, &e.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update enterprise: %w", err)
	}
	return &e, nil
}

// ListOverview devuelve todas las agencias con sus contadores agregados.
func (r *EnterpriseRepo) ListOverview() ([]*entity.EnterpriseOverview, error) {
	query := `
		SELECT
			e.id, e.name, e.address, e.status, e.plan, e.created_at,
			(SELECT COUNT(*) FROM users WHERE enterprise_id = e.id AND role = 'director') AS directors_count,
			(SELECT COUNT(*) FROM users WHERE enterprise_id = e.id AND role = 'agent') AS agents_count,
			(SELECT COUNT(*) FROM vehicles WHERE enterprise_id = e.id) AS vehicles_count,
			(SELECT COUNT(*) FROM customers WHERE enterprise_id = e.id) AS customers_count,
			(SELECT COUNT(*) FROM rentals WHERE enterprise_id = e.id) AS rentals_count,
			(SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE enterprise_id = e.id) AS revenue_cents
		FROM enterprises e
		ORDER BY e.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list enterprises: %w", err)
	}
	defer rows.Close()

	var list []*entity.EnterpriseOverview
	for rows.Next() {
		var e entity.EnterpriseOverview
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Address, &e.Status, &e.Plan, &e.CreatedAt,
			&e.DirectorsCount, &e.AgentsCount, &e.VehiclesCount,
			&e.CustomersCount, &e.RentalsCount, &e.RevenueCents,
		); err != nil {
			return nil, fmt.Errorf("scan enterprise: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountUsers cuenta los usuarios asociados a la agencia.
func (r *EnterpriseRepo) CountUsers(id string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE enterprise_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// Delete elimina una agencia por ID.
func (r *EnterpriseRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM enterprises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enterprise: %w", err)
	}
	return nil
}

// Status consulta el estado actual de la agencia. Va directo a la tabla en
// cada request autenticado: la suspensión debe aplicar de inmediato aunque
// el token siga vigente.
func (r *EnterpriseRepo) Status(ctx context.Context, id string) (string, error) {
	var status string
	err := r.pool.QueryRow(ctx, `SELECT status FROM enterprises WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("enterprise status: %w", err)
	}
	return status, nil
}
