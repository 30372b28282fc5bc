package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/clientes-api/internal/application/auth"
	"github.com/tu-usuario/clientes-api/internal/application/clients"
	"github.com/tu-usuario/clientes-api/internal/application/contracts"
	infrapdf "github.com/tu-usuario/clientes-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/clientes-api/internal/interfaces/http"
	"github.com/tu-usuario/clientes-api/pkg/clock"
	"github.com/tu-usuario/clientes-api/pkg/config"
	"github.com/tu-usuario/clientes-api/pkg/logger"
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

	contractRepo := postgres.NewContractRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	clientInfoRepo := postgres.NewClientInfoRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	contractTx := postgres.NewContractTxRunner(pool)
	clientTx := postgres.NewClientTxRunner(pool)
	clk := clock.System{}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	contractUC := contracts.NewContractUseCase(
		contractRepo, personRepo, companyRepo, clientInfoRepo,
		contractTx, pdfGenerator, clk,
	)
	deactivationUC := clients.NewDeactivationUseCase(clientTx, clk)
	personUC := clients.NewPersonUseCase(personRepo, clientInfoRepo, clientTx, deactivationUC, clk)
	companyUC := clients.NewCompanyUseCase(companyRepo, clientInfoRepo, clientTx, deactivationUC, clk)
	clientInfoUC := clients.NewClientInfoUseCase(clientInfoRepo, clk)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ContractUC:   contractUC,
		PersonUC:     personUC,
		CompanyUC:    companyUC,
		ClientInfoUC: clientInfoUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
