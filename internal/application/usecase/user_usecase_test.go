package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
)

func buildUserUC() (*usecase.UserUseCase, *fakeUserListRepo, *fakeEnterpriseRepo) {
	userRepo := &fakeUserListRepo{}
	entRepo := newFakeEnterpriseRepo()
	entRepo.enterprises[ownEnterprise] = &entity.Enterprise{
		ID: ownEnterprise, Name: "Agencia Propia", Status: entity.EnterpriseActive,
	}
	return usecase.NewUserUseCase(userRepo, entRepo), userRepo, entRepo
}

func TestCreateForEnterprise_RolInvalido(t *testing.T) {
	uc, _, _ := buildUserUC()

	_, err := uc.CreateForEnterprise(dto.CreateUserRequest{
		EnterpriseID: ownEnterprise,
		Email:        "x@agencia.test",
		Password:     "12345678",
		Role:         entity.RoleSuperadmin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"por esta vía solo se crean director y agent")
}

func TestCreateForEnterprise_AgenciaInexistente_NotFound(t *testing.T) {
	uc, _, _ := buildUserUC()

	_, err := uc.CreateForEnterprise(dto.CreateUserRequest{
		EnterpriseID: "no-existe",
		Email:        "x@agencia.test",
		Password:     "12345678",
		Role:         entity.RoleDirector,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateForEnterprise_GuardaHashNoPlano(t *testing.T) {
	uc, userRepo, _ := buildUserUC()

	out, err := uc.CreateForEnterprise(dto.CreateUserRequest{
		EnterpriseID: ownEnterprise,
		Email:        "director@agencia.test",
		Password:     "12345678",
		Role:         entity.RoleDirector,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDirector, out.Role)
	assert.Equal(t, ownEnterprise, out.EnterpriseID)

	require.Len(t, userRepo.users, 1)
	stored := userRepo.users[0]
	assert.NotEqual(t, "12345678", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("12345678")))
}

func TestCreateAgent_QuedaEnLaAgenciaDelDirector(t *testing.T) {
	uc, userRepo, _ := buildUserUC()

	out, err := uc.CreateAgent(ownEnterprise, dto.CreateAgentRequest{
		Email:    "agent@agencia.test",
		Password: "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAgent, out.Role)
	assert.Equal(t, ownEnterprise, out.EnterpriseID)
	require.Len(t, userRepo.users, 1)
}

func TestListAgents_FiltraSoloAgents(t *testing.T) {
	uc, userRepo, _ := buildUserUC()
	userRepo.users = []*entity.User{
		{ID: "u1", EnterpriseID: ownEnterprise, Email: "d@a.test", Role: entity.RoleDirector},
		{ID: "u2", EnterpriseID: ownEnterprise, Email: "a@a.test", Role: entity.RoleAgent},
		{ID: "u3", EnterpriseID: otherEnterprise, Email: "b@b.test", Role: entity.RoleAgent},
	}

	out, err := uc.ListAgents(ownEnterprise)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a@a.test", out[0].Email)
}
