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
	"github.com/wsuarezb/toolstock-api/internal/application/auth"
	"github.com/wsuarezb/toolstock-api/internal/application/documents"
	"github.com/wsuarezb/toolstock-api/internal/application/inventory"
	"github.com/wsuarezb/toolstock-api/internal/application/reports"
	"github.com/wsuarezb/toolstock-api/internal/application/usecase"
	infraexcel "github.com/wsuarezb/toolstock-api/internal/infrastructure/excel"
	infrapdf "github.com/wsuarezb/toolstock-api/internal/infrastructure/pdf"
	"github.com/wsuarezb/toolstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/wsuarezb/toolstock-api/internal/interfaces/http"
	"github.com/wsuarezb/toolstock-api/pkg/config"
	"github.com/wsuarezb/toolstock-api/pkg/logger"
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

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	toolRepo := postgres.NewToolRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	responsibleRepo := postgres.NewResponsibleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	wellRepo := postgres.NewWellRepository(pool)
	toolTypeRepo := postgres.NewToolTypeRepository(pool)
	equivalenceRepo := postgres.NewEquivalenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewUseCase(txRunner)
	stockQueryUC := inventory.NewQueryUseCase(toolRepo, stockRepo)
	responsibleUC := usecase.NewResponsibleUseCase(responsibleRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	wellUC := usecase.NewWellUseCase(wellRepo)
	toolTypeUC := usecase.NewToolTypeUseCase(toolTypeRepo)
	equivalenceUC := usecase.NewEquivalenceUseCase(equivalenceRepo)
	reportsUC := reports.NewUseCase(movementRepo, stockRepo, infraexcel.NewStockExporter())
	documentsUC := documents.NewUseCase(toolRepo, equivalenceRepo, infrapdf.NewMarotoNoteGenerator())
	authUC := auth.NewUseCase(auth.Config{
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		JWTSecret:         cfg.Auth.JWTSecret,
		ExpMinutes:        cfg.Auth.JWTExpiration,
		Issuer:            cfg.Auth.JWTIssuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ToolStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:   inventoryUC,
		StockQueryUC:  stockQueryUC,
		ResponsibleUC: responsibleUC,
		ClientUC:      clientUC,
		WellUC:        wellUC,
		ToolTypeUC:    toolTypeUC,
		EquivalenceUC: equivalenceUC,
		ReportsUC:     reportsUC,
		DocumentsUC:   documentsUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.Auth.JWTSecret,
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
