package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/rentacar-api/internal/application/analytics"
	"github.com/jhoicas/rentacar-api/internal/application/auth"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
	"github.com/jhoicas/rentacar-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/rentacar-api/internal/infrastructure/pdf"
	"github.com/jhoicas/rentacar-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/rentacar-api/internal/interfaces/http"
	"github.com/jhoicas/rentacar-api/pkg/config"
	"github.com/jhoicas/rentacar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	enterpriseRepo := postgres.NewEnterpriseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	rentalRepo := postgres.NewRentalRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	mailer := mail.NewGomailSender(cfg.SMTP)
	receipts := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	}, cfg.App.FrontendURL)
	enterpriseUC := usecase.NewEnterpriseUseCase(enterpriseRepo, userRepo)
	userUC := usecase.NewUserUseCase(userRepo, enterpriseRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	rentalUC := usecase.NewRentalUseCase(rentalRepo, customerRepo, vehicleRepo, enterpriseRepo, receipts)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RentaCar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EnterpriseUC:  enterpriseUC,
		UserUC:        userUC,
		CustomerUC:    customerUC,
		VehicleUC:     vehicleUC,
		RentalUC:      rentalUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
		StatusChecker: enterpriseRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
