package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rentacar-api/internal/application/analytics"
	"github.com/jhoicas/rentacar-api/internal/application/auth"
	"github.com/jhoicas/rentacar-api/internal/application/usecase"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	EnterpriseUC  *usecase.EnterpriseUseCase
	UserUC        *usecase.UserUseCase
	CustomerUC    *usecase.CustomerUseCase
	VehicleUC     *usecase.VehicleUseCase
	RentalUC      *usecase.RentalUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
	StatusChecker StatusChecker
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/bootstrap-superadmin", authHandler.BootstrapSuperadmin)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/verify-code", authHandler.VerifyReset)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token y agencia no suspendida)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.StatusChecker))
	protected.Get("/auth/me", authHandler.Me)

	// Panel superadmin
	superadmin := protected.Group("/superadmin", RequireRole(entity.RoleSuperadmin))
	enterpriseHandler := NewEnterpriseHandler(deps.EnterpriseUC, deps.UserUC, deps.DashboardUC)
	superadmin.Get("/stats", enterpriseHandler.Stats)
	superadmin.Get("/enterprises", enterpriseHandler.List)
	superadmin.Post("/enterprises", enterpriseHandler.Create)
	superadmin.Put("/enterprises/:id", enterpriseHandler.Update)
	superadmin.Delete("/enterprises/:id", enterpriseHandler.Delete)
	superadmin.Get("/enterprises/:id/users", enterpriseHandler.ListUsers)
	superadmin.Post("/users", enterpriseHandler.CreateUser)

	// Panel del director
	company := protected.Group("/company", RequireRole(entity.RoleDirector))
	companyHandler := NewCompanyHandler(deps.UserUC, deps.DashboardUC)
	company.Get("/users", companyHandler.ListAgents)
	company.Post("/users", companyHandler.CreateAgent)
	company.Get("/dashboard", companyHandler.Dashboard)

	// Operación del tenant (los tres roles; el alcance lo decide authz)
	operational := RequireRole(entity.RoleSuperadmin, entity.RoleDirector, entity.RoleAgent)

	customers := protected.Group("/customers", operational)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	vehicles := protected.Group("/vehicles", operational)
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)

	rentals := protected.Group("/rentals", operational)
	rentalHandler := NewRentalHandler(deps.RentalUC)
	rentals.Post("/", rentalHandler.Create)
	rentals.Get("/", rentalHandler.List)
	rentals.Get("/:id/receipt", rentalHandler.Receipt)
}
