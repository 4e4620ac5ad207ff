package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, enterprise_id, full_name, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.EnterpriseID, customer.FullName,
		customer.Phone, customer.Email, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByIDAndEnterprise obtiene un cliente filtrando por tenant. Un ID de
// otra agencia responde como inexistente.
func (r *CustomerRepo) GetByIDAndEnterprise(id, enterpriseID string) (*entity.Customer, error) {
	query := `
		SELECT id, enterprise_id, full_name, phone, email, created_at
		FROM customers WHERE id = $1 AND enterprise_id = $2`
	var c entity.Customer
	err := r.pool.QueryRow(context.Background(), query, id, enterpriseID).Scan(
		&c.ID, &c.EnterpriseID, &c.FullName, &c.Phone, &c.Email, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByEnterprise lista clientes de la agencia, más recientes primero.
func (r *CustomerRepo) ListByEnterprise(enterpriseID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, enterprise_id, full_name, phone, email, created_at
		FROM customers WHERE enterprise_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, enterpriseID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.EnterpriseID, &c.FullName, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
