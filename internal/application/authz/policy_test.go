package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rentacar-api/internal/application/authz"
	"github.com/jhoicas/rentacar-api/internal/domain"
)

const (
	ownEnterprise     = "11111111-1111-1111-1111-111111111111"
	foreignEnterprise = "22222222-2222-2222-2222-222222222222"
)

func agentIdentity() authz.Identity {
	return authz.Identity{UserID: "u1", Email: "agent@atlas.com", Role: "agent", EnterpriseID: ownEnterprise}
}

func superadminIdentity() authz.Identity {
	return authz.Identity{UserID: "sa", Email: "root@rentacar.com", Role: "superadmin"}
}

// Un agent siempre opera contra su propia agencia, aunque pida otra.
func TestResolveScope_AgentIgnoraEnterpriseAjeno(t *testing.T) {
	scope, err := authz.ResolveScope(agentIdentity(), foreignEnterprise)
	require.NoError(t, err)
	assert.Equal(t, ownEnterprise, scope,
		"el scope de un agent debe ser su propia agencia, no la solicitada")
}

func TestResolveScope_DirectorSinParametro(t *testing.T) {
	id := agentIdentity()
	id.Role = "director"
	scope, err := authz.ResolveScope(id, "")
	require.NoError(t, err)
	assert.Equal(t, ownEnterprise, scope)
}

// Superadmin debe indicar la agencia explícitamente.
func TestResolveScope_SuperadminConParametro(t *testing.T) {
	scope, err := authz.ResolveScope(superadminIdentity(), foreignEnterprise)
	require.NoError(t, err)
	assert.Equal(t, foreignEnterprise, scope)
}

func TestResolveScope_SuperadminSinParametroFalla(t *testing.T) {
	_, err := authz.ResolveScope(superadminIdentity(), "")
	assert.ErrorIs(t, err, domain.ErrMissingScope)
}

// Un token sin agencia y sin rol superadmin no tiene scope válido.
func TestResolveScope_IdentidadSinAgenciaFalla(t *testing.T) {
	id := agentIdentity()
	id.EnterpriseID = ""
	_, err := authz.ResolveScope(id, foreignEnterprise)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCanManageFleet_RolesOperativos(t *testing.T) {
	assert.True(t, authz.CanManageFleet(agentIdentity()))

	director := agentIdentity()
	director.Role = "director"
	assert.True(t, authz.CanManageFleet(director))
}

// El superadmin no crea data operativa: administra agencias y cuentas.
func TestCanManageFleet_SuperadminExcluido(t *testing.T) {
	assert.False(t, authz.CanManageFleet(superadminIdentity()))
}

func TestCanManageAgents_SoloDirectorDeSuAgencia(t *testing.T) {
	director := agentIdentity()
	director.Role = "director"

	assert.True(t, authz.CanManageAgents(director, ownEnterprise))
	assert.False(t, authz.CanManageAgents(director, foreignEnterprise),
		"un director no administra agentes de otra agencia")
	assert.False(t, authz.CanManageAgents(agentIdentity(), ownEnterprise))
	assert.False(t, authz.CanManageAgents(superadminIdentity(), ownEnterprise))
}
