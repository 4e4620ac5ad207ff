package repository

import "github.com/jhoicas/rentacar-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	// GetByIDAndEnterprise filtra por tenant: un ID válido de otra agencia
	// se comporta como inexistente.
	GetByIDAndEnterprise(id, enterpriseID string) (*entity.Customer, error)
	ListByEnterprise(enterpriseID string) ([]*entity.Customer, error)
}
