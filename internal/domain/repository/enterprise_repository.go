package repository

import (
	"context"

	"github.com/jhoicas/rentacar-api/internal/domain/entity"
)

// EnterpriseRepository define el puerto de persistencia para Enterprise (DIP).
// La implementación vive en infrastructure.
type EnterpriseRepository interface {
	Create(enterprise *entity.Enterprise) error
	GetByID(id string) (*entity.Enterprise, error)
	// Update aplica solo los campos no nil. Devuelve la fila actualizada o
	// nil si no existe.
	Update(id string, patch EnterprisePatch) (*entity.Enterprise, error)
	// ListOverview devuelve todas las agencias con sus contadores agregados,
	// ordenadas por fecha de creación descendente.
	ListOverview() ([]*entity.EnterpriseOverview, error)
	// CountUsers cuenta los usuarios asociados (bloquea el borrado si > 0).
	CountUsers(id string) (int64, error)
	Delete(id string) error
	// Status consulta el estado actual de la agencia. Se usa en cada request
	// autenticado: la suspensión aplica de inmediato, sin esperar re-login.
	Status(ctx context.Context, id string) (string, error)
}

// EnterprisePatch campos opcionales para actualización parcial.
type EnterprisePatch struct {
	Name    *string
	Address *string
	Status  *string
	Plan    *string
}
