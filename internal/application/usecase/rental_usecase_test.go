package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRentalRepo struct {
	rentals []*entity.Rental
}

// Create simula el constraint de exclusión de la tabla: dos alquileres
// activos del mismo vehículo con fechas solapadas (rango inclusivo) chocan.
func (f *fakeRentalRepo) Create(r *entity.Rental) error {
	for _, existing := range f.rentals {
		if existing.VehicleID == r.VehicleID && existing.Status == entity.RentalActive &&
			!r.StartDate.After(existing.EndDate) && !existing.StartDate.After(r.EndDate) {
			return domain.ErrConflict
		}
	}
	f.rentals = append(f.rentals, r)
	return nil
}

func (f *fakeRentalRepo) GetByIDAndEnterprise(id, enterpriseID string) (*entity.RentalDetail, error) {
	for _, r := range f.rentals {
		if r.ID == id && r.EnterpriseID == enterpriseID {
			return &entity.RentalDetail{Rental: *r}, nil
		}
	}
	return nil, nil
}

func (f *fakeRentalRepo) ListByEnterprise(enterpriseID string) ([]*entity.RentalDetail, error) {
	var out []*entity.RentalDetail
	for _, r := range f.rentals {
		if r.EnterpriseID == enterpriseID {
			out = append(out, &entity.RentalDetail{Rental: *r})
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers = append(f.customers, c)
	return nil
}

func (f *fakeCustomerRepo) GetByIDAndEnterprise(id, enterpriseID string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id && c.EnterpriseID == enterpriseID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListByEnterprise(enterpriseID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.EnterpriseID == enterpriseID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeVehicleRepo struct {
	vehicles []*entity.Vehicle
}

func (f *fakeVehicleRepo) Create(v *entity.Vehicle) error {
	f.vehicles = append(f.vehicles, v)
	return nil
}

func (f *fakeVehicleRepo) GetByIDAndEnterprise(id, enterpriseID string) (*entity.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id && v.EnterpriseID == enterpriseID {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVehicleRepo) ListByEnterprise(enterpriseID string) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range f.vehicles {
		if v.EnterpriseID == enterpriseID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeEnterpriseRepo struct {
	enterprises map[string]*entity.Enterprise
	userCount   map[string]int64
	deleted     []string
}

func newFakeEnterpriseRepo() *fakeEnterpriseRepo {
	return &fakeEnterpriseRepo{
		enterprises: map[string]*entity.Enterprise{},
		userCount:   map[string]int64{},
	}
}

func (f *fakeEnterpriseRepo) Create(e *entity.Enterprise) error {
	f.enterprises[e.ID] = e
	return nil
}

func (f *fakeEnterpriseRepo) GetByID(id string) (*entity.Enterprise, error) {
	return f.enterprises[id], nil
}

func (f *fakeEnterpriseRepo) Update(id string, patch repository.EnterprisePatch) (*entity.Enterprise, error) {
	e, ok := f.enterprises[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Address != nil {
		e.Address = *patch.Address
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.Plan != nil {
		e.Plan = *patch.Plan
	}
	return e, nil
}

func (f *fakeEnterpriseRepo) ListOverview() ([]*entity.EnterpriseOverview, error) {
	var out []*entity.EnterpriseOverview
	for _, e := range f.enterprises {
		out = append(out, &entity.EnterpriseOverview{Enterprise: *e})
	}
	return out, nil
}

func (f *fakeEnterpriseRepo) CountUsers(id string) (int64, error) {
	return f.userCount[id], nil
}

func (f *fakeEnterpriseRepo) Delete(id string) error {
	delete(f.enterprises, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEnterpriseRepo) Status(_ context.Context, id string) (string, error) {
	e, ok := f.enterprises[id]
	if !ok {
		return "", nil
	}
	return e.Status, nil
}

type fakeReceipts struct {
	calls int
}

func (f *fakeReceipts) Generate(_ *entity.RentalDetail, _ string) ([]byte, error) {
	f.calls++
	return []byte("%PDF-1.4"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	ownEnterprise   = "ent-propia"
	otherEnterprise = "ent-ajena"
)

func buildRentalUC() (*usecase.RentalUseCase, *fakeRentalRepo) {
	rentals := &fakeRentalRepo{}
	customers := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: "cust-1", EnterpriseID: ownEnterprise, FullName: "Ana Gómez"},
		{ID: "cust-ajeno", EnterpriseID: otherEnterprise, FullName: "Cliente Ajeno"},
	}}
	vehicles := &fakeVehicleRepo{vehicles: []*entity.Vehicle{
		{ID: "veh-1", EnterpriseID: ownEnterprise, Name: "Toyota Corolla", Plate: "ABC123", DailyPriceCents: 10_000, Status: entity.VehicleAvailable},
		{ID: "veh-ajeno", EnterpriseID: otherEnterprise, Name: "Mazda 3", Plate: "XYZ789", DailyPriceCents: 20_000, Status: entity.VehicleAvailable},
	}}
	enterprises := newFakeEnterpriseRepo()
	enterprises.enterprises[ownEnterprise] = &entity.Enterprise{
		ID: ownEnterprise, Name: "Agencia Propia", Status: entity.EnterpriseActive,
	}
	return usecase.NewRentalUseCase(rentals, customers, vehicles, enterprises, &fakeReceipts{}), rentals
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El total son días INCLUSIVOS por precio diario: del 01 al 03 son 3 días.
func TestRentalCreate_TotalPorDiasInclusivos(t *testing.T) {
	uc, _ := buildRentalUC()

	out, err := uc.Create(ownEnterprise, dto.CreateRentalRequest{
		CustomerID: "cust-1",
		VehicleID:  "veh-1",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), out.TotalCents, "3 días x 10000")
	assert.Equal(t, entity.RentalActive, out.Status)
	assert.Equal(t, "Ana Gómez", out.CustomerName)
	assert.Equal(t, "ABC123", out.VehiclePlate)
}

// Un solo día (start == end) también cobra un día completo.
func TestRentalCreate_UnSoloDiaCobraUnDia(t *testing.T) {
	uc, _ := buildRentalUC()

	out, err := uc.Create(ownEnterprise, dto.CreateRentalRequest{
		CustomerID: "cust-1",
		VehicleID:  "veh-1",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), out.TotalCents)
}

// Un ID válido de otra agencia responde igual que uno inexistente: 404.
// Así no se puede confirmar la existencia de data ajena adivinando IDs.
func TestRentalCreate_ReferenciasDeOtraAgencia_NotFound(t *testing.T) {
	uc, _ := buildRentalUC()

	_, err := uc.Create(ownEnterprise, dto.CreateRentalRequest{
		CustomerID: "cust-ajeno",
		VehicleID:  "veh-1",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente de otro tenant")

	_, err = uc.Create(ownEnterprise, dto.CreateRentalRequest{
		CustomerID: "cust-1",
		VehicleID:  "veh-ajeno",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "vehículo de otro tenant")
}

func TestRentalCreate_FechasInvalidas(t *testing.T) {
	uc, _ := buildRentalUC()

	cases := []struct {
		name       string
		start, end string
	}{
		{"formato incorrecto", "01/09/2026", "2026-09-03"},
		{"fin antes del inicio", "2026-09-05", "2026-09-03"},
		{"fecha vacía", "", "2026-09-03"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ownEnterprise, dto.CreateRentalRequest{
				CustomerID: "cust-1",
				VehicleID:  "veh-1",
				StartDate:  tc.start,
				EndDate:    tc.end,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// El solapamiento con un alquiler activo del mismo vehículo es conflicto.
func TestRentalCreate_SolapamientoMismoVehiculo_Conflicto(t *testing.T) {
	uc, _ := buildRentalUC()

	_, err := uc.Create(ownEnterprise, dto.CreateRentalRequest{
		CustomerID: "cust-1", VehicleID: "veh-1",
		StartDate: "2026-09-01", EndDate: "2026-09-05",
	})
	require.NoError(t, err)

	_, err = uc.Create(ownEnterprise, dto.CreateRentalRequest{
		CustomerID: "cust-1", VehicleID: "veh-1",
		StartDate: "2026-09-05", EndDate: "2026-09-08",
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "comparte el día 05 con el alquiler anterior")

	_, err = uc.Create(ownEnterprise, dto.CreateRentalRequest{
		CustomerID: "cust-1", VehicleID: "veh-1",
		StartDate: "2026-09-06", EndDate: "2026-09-08",
	})
	assert.NoError(t, err, "fechas disjuntas sí se aceptan")
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestRentalList_SoloDeLaAgencia(t *testing.T) {
	uc, repo := buildRentalUC()
	now := time.Now()
	repo.rentals = []*entity.Rental{
		{ID: "r1", EnterpriseID: ownEnterprise, VehicleID: "veh-1", CreatedAt: now},
		{ID: "r2", EnterpriseID: otherEnterprise, VehicleID: "veh-ajeno", CreatedAt: now},
	}

	out, err := uc.List(ownEnterprise)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)
}

func TestRentalReceipt_DeOtraAgencia_NotFound(t *testing.T) {
	uc, repo := buildRentalUC()
	repo.rentals = []*entity.Rental{
		{ID: "r2", EnterpriseID: otherEnterprise, VehicleID: "veh-ajeno"},
	}

	_, err := uc.Receipt(ownEnterprise, "r2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRentalReceipt_GeneraElPDF(t *testing.T) {
	uc, repo := buildRentalUC()
	repo.rentals = []*entity.Rental{
		{ID: "r1", EnterpriseID: ownEnterprise, VehicleID: "veh-1"},
	}

	pdf, err := uc.Receipt(ownEnterprise, "r1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
