package repository

import (
	"time"

	"github.com/jhoicas/rentacar-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail incluye el estado de la agencia asociada (join) para que el
	// login rechace tenants suspendidos sin una segunda consulta.
	GetByEmail(email string) (*entity.User, string, error)
	// ListByEnterprise lista usuarios de una agencia; role vacío = todos.
	ListByEnterprise(enterpriseID, role string) ([]*entity.User, error)
	// HasSuperadmin informa si ya existe al menos un superadmin.
	HasSuperadmin() (bool, error)
	// SetResetProof reemplaza código/token de recuperación y su vencimiento.
	// La solicitud más reciente siempre gana.
	SetResetProof(userID, code, linkToken string, expires time.Time) error
	// UpdatePassword cambia el hash y limpia código y token juntos.
	UpdatePassword(userID, passwordHash string) error
}
