// Package authz concentra las reglas de tenant y rol que antes vivían
// repetidas en cada handler: una sola pieza decide a qué agencia opera un
// request y qué acciones permite cada rol.
package authz

import (
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
)

// Identity es la identidad decodificada del token que viaja por el request.
// EnterpriseID es vacío para superadmin.
type Identity struct {
	UserID       string
	Email        string
	Role         string
	EnterpriseID string
}

// IsSuperadmin informa si la identidad es el administrador global.
func (i Identity) IsSuperadmin() bool {
	return i.Role == entity.RoleSuperadmin
}

// ResolveScope determina el enterprise_id contra el que opera el request.
//
//   - director/agent: siempre su propia agencia; el parámetro del caller se
//     ignora (no puede saltar de tenant ni suministrando otro ID).
//   - superadmin: debe indicar la agencia explícitamente; sin parámetro en un
//     listado devuelve domain.ErrMissingScope (400).
func ResolveScope(id Identity, requested string) (string, error) {
	if !id.IsSuperadmin() {
		if id.EnterpriseID == "" {
			return "", domain.ErrForbidden
		}
		return id.EnterpriseID, nil
	}
	if requested == "" {
		return "", domain.ErrMissingScope
	}
	return requested, nil
}

// CanManageFleet informa si la identidad puede crear data operativa del
// tenant (clientes, vehículos, alquileres). El superadmin queda excluido a
// propósito: administra agencias y cuentas, no la operación diaria.
func CanManageFleet(id Identity) bool {
	return id.Role == entity.RoleDirector || id.Role == entity.RoleAgent
}

// CanManageAgents informa si la identidad puede administrar agentes de la
// agencia dada. Solo el director de esa misma agencia.
func CanManageAgents(id Identity, enterpriseID string) bool {
	return id.Role == entity.RoleDirector && id.EnterpriseID == enterpriseID
}
