package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/auth"
	"github.com/tu-usuario/clientes-api/internal/application/clients"
	"github.com/tu-usuario/clientes-api/internal/application/contracts"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ContractUC   *contracts.ContractUseCase
	PersonUC     *clients.PersonUseCase
	CompanyUC    *clients.CompanyUseCase
	ClientInfoUC *clients.ClientInfoUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las bajas quedan reservadas al rol admin.
	adminOnly := RequireRole(entity.RoleAdmin)

	// Contracts (protegido)
	contractsGroup := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contractsGroup.Post("/", contractHandler.Create)
	contractsGroup.Get("/", contractHandler.List)
	// Las rutas por dueño van antes de /:id para que Fiber no las capture.
	contractsGroup.Get("/company/:companyId/active", contractHandler.ActiveByCompany)
	contractsGroup.Get("/company/:companyId/active/total", contractHandler.ActiveCostTotalByCompany)
	contractsGroup.Get("/person/:personId/active", contractHandler.ActiveByPerson)
	contractsGroup.Get("/person/:personId/active/total", contractHandler.ActiveCostTotalByPerson)
	contractsGroup.Get("/:id/pdf", contractHandler.SummaryPDF)
	contractsGroup.Get("/:id", contractHandler.GetByID)
	contractsGroup.Put("/:id", contractHandler.Update)
	contractsGroup.Patch("/:id", contractHandler.PartialUpdate)
	contractsGroup.Delete("/:id", adminOnly, contractHandler.Delete)

	// Persons (protegido; DELETE cierra contratos y desactiva el perfil)
	persons := protected.Group("/persons")
	personHandler := NewPersonHandler(deps.PersonUC)
	persons.Post("/", personHandler.Create)
	persons.Get("/", personHandler.List)
	persons.Get("/:id", personHandler.GetByID)
	persons.Put("/:id", personHandler.Update)
	persons.Patch("/:id", personHandler.PartialUpdate)
	persons.Delete("/:id", adminOnly, personHandler.Delete)

	// Companies (protegido; DELETE cierra contratos y desactiva el perfil)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Patch("/:id", companyHandler.PartialUpdate)
	companies.Delete("/:id", adminOnly, companyHandler.Delete)

	// Client profiles (protegido, solo lectura y edición de contacto)
	clientsGroup := protected.Group("/clients")
	clientInfoHandler := NewClientInfoHandler(deps.ClientInfoUC)
	clientsGroup.Get("/", clientInfoHandler.List)
	clientsGroup.Get("/:id", clientInfoHandler.GetByID)
	clientsGroup.Put("/:id", clientInfoHandler.Update)
}
