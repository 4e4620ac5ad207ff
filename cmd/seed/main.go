// seed puebla la base con data de demostración: un superadmin, dos agencias
// con su director y un agent, flota y clientes iniciales.
//
// Uso: SEED_PASSWORD=<contraseña> go run ./cmd/seed
// La contraseña se aplica a todas las cuentas creadas; sin la variable el
// comando aborta en vez de inventar una contraseña conocida.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/rentacar-api/internal/application/auth"
	"github.com/jhoicas/rentacar-api/internal/application/dto"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/infrastructure/postgres"
	"github.com/jhoicas/rentacar-api/pkg/config"
)

// noopMailer el seeder no envía correos.
type noopMailer struct{}

func (noopMailer) SendResetEmail(_, _, _ string) error { return nil }

type seedEnterprise struct {
	name      string
	address   string
	plan      string
	director  string
	agent     string
	vehicles  []dto.CreateVehicleRequest
	customers []string
}

func main() {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SEED_PASSWORD es requerida")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	enterpriseRepo := postgres.NewEnterpriseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, noopMailer{}, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	}, cfg.App.FrontendURL)
	enterpriseUC := usecase.NewEnterpriseUseCase(enterpriseRepo, userRepo)
	userUC := usecase.NewUserUseCase(userRepo, enterpriseRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)

	if _, err := authUC.BootstrapSuperadmin(dto.BootstrapSuperadminRequest{
		Email:    "admin@rentacar.local",
		Password: password,
	}); err != nil && err != domain.ErrConflict {
		fmt.Fprintf(os.Stderr, "crear superadmin: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("superadmin: admin@rentacar.local")

	seeds := []seedEnterprise{
		{
			name:     "RentaCar Norte",
			address:  "Av. Principal 123",
			plan:     entity.PlanPro,
			director: "director@norte.local",
			agent:    "agente@norte.local",
			vehicles: []dto.CreateVehicleRequest{
				{Name: "Toyota Corolla 2023", Plate: "NOR-001", DailyPriceCents: 450_00},
				{Name: "Mazda CX-5 2024", Plate: "NOR-002", DailyPriceCents: 780_00},
				{Name: "Renault Logan 2022", Plate: "NOR-003", DailyPriceCents: 320_00, Status: entity.VehicleMaintenance},
			},
			customers: []string{"Ana Gómez", "Carlos Pérez"},
		},
		{
			name:     "RentaCar Sur",
			address:  "Calle 45 Sur 678",
			plan:     entity.PlanFree,
			director: "director@sur.local",
			agent:    "agente@sur.local",
			vehicles: []dto.CreateVehicleRequest{
				{Name: "Kia Picanto 2023", Plate: "SUR-001", DailyPriceCents: 280_00},
				{Name: "Chevrolet Tracker 2024", Plate: "SUR-002", DailyPriceCents: 650_00},
			},
			customers: []string{"María Rodríguez"},
		},
	}

	for _, s := range seeds {
		ent, err := enterpriseUC.Create(dto.CreateEnterpriseRequest{
			Name:    s.name,
			Address: s.address,
			Plan:    s.plan,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear agencia %s: %v\n", s.name, err)
			os.Exit(1)
		}

		if _, err := userUC.CreateForEnterprise(dto.CreateUserRequest{
			EnterpriseID: ent.ID,
			Email:        s.director,
			Password:     password,
			Role:         entity.RoleDirector,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "crear director de %s: %v\n", s.name, err)
			os.Exit(1)
		}
		if _, err := userUC.CreateForEnterprise(dto.CreateUserRequest{
			EnterpriseID: ent.ID,
			Email:        s.agent,
			Password:     password,
			Role:         entity.RoleAgent,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "crear agent de %s: %v\n", s.name, err)
			os.Exit(1)
		}

		for _, v := range s.vehicles {
			if _, err := vehicleUC.Create(ent.ID, v); err != nil {
				fmt.Fprintf(os.Stderr, "crear vehículo %s: %v\n", v.Plate, err)
				os.Exit(1)
			}
		}
		for _, name := range s.customers {
			if _, err := customerUC.Create(ent.ID, dto.CreateCustomerRequest{FullName: name}); err != nil {
				fmt.Fprintf(os.Stderr, "crear cliente %s: %v\n", name, err)
				os.Exit(1)
			}
		}

		fmt.Printf("agencia %s (%s): director %s, agent %s, %d vehículos, %d clientes\n",
			s.name, ent.ID, s.director, s.agent, len(s.vehicles), len(s.customers))
	}
}
