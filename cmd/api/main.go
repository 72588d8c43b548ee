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

	appanalytics "github.com/jhoicas/bike-ledgers/internal/application/analytics"
	"github.com/jhoicas/bike-ledgers/internal/application/auth"
	"github.com/jhoicas/bike-ledgers/internal/application/billing"
	"github.com/jhoicas/bike-ledgers/internal/application/inventory"
	"github.com/jhoicas/bike-ledgers/internal/application/ledger"
	"github.com/jhoicas/bike-ledgers/internal/application/ports"
	"github.com/jhoicas/bike-ledgers/internal/application/usecase"
	"github.com/jhoicas/bike-ledgers/internal/domain/entity"
	"github.com/jhoicas/bike-ledgers/internal/domain/repository"
	infraai "github.com/jhoicas/bike-ledgers/internal/infrastructure/ai"
	"github.com/jhoicas/bike-ledgers/internal/infrastructure/catalog"
	infrapdf "github.com/jhoicas/bike-ledgers/internal/infrastructure/pdf"
	"github.com/jhoicas/bike-ledgers/internal/infrastructure/postgres"
	"github.com/jhoicas/bike-ledgers/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/bike-ledgers/internal/interfaces/http"
	"github.com/jhoicas/bike-ledgers/pkg/config"
	"github.com/jhoicas/bike-ledgers/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("ai", cfg.AI.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén de cuentas: único dato durable.
	var store repository.KeyValueStore
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar kv_store en PostgreSQL")
		}
		store = pgStore
	default:
		sqliteStore, err := sqlite.Open(cfg.Storage.SQLitePath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir SQLite")
		}
		defer sqliteStore.Close()
		store = sqliteStore
	}

	// Ledger en memoria: catálogo y facturas viven solo durante el proceso.
	products := ledger.SampleProducts()
	if cfg.Catalog.Path != "" {
		products, err = catalog.LoadJSON(cfg.Catalog.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("cargar catálogo")
		}
	}
	var bills []entity.Bill
	if cfg.Catalog.SeedSamples {
		bills = ledger.SampleBills()
	}
	state := ledger.NewState(products, bills)
	log.Info().Int("products", len(products)).Int("bills", len(bills)).Msg("ledger inicializado")

	authUC, err := auth.NewAuthUseCase(ctx, store, cfg.Storage.AccountsKey, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar cuentas")
	}

	inventoryUC := inventory.NewInventoryUseCase(state, log)
	replenishmentUC := inventory.NewReplenishmentUseCase(state)
	billingUC := billing.NewBillingUseCase(state, log)
	invoicePDFUC := billing.NewPDFUseCase(state, infrapdf.NewMarotoPDFGenerator())
	dashboardUC := appanalytics.NewDashboardUseCase(state)

	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	aiUC := usecase.NewAIUseCase(llm, state, log)

	// Sin WriteTimeout: el análisis IA no tiene límite de tiempo.
	// Immutable: los IDs de la ruta quedan guardados en el historial de stock.
	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		Immutable:   true,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.CORSOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bike Ledgers API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		InventoryUC:   inventoryUC,
		Replenishment: replenishmentUC,
		BillingUC:     billingUC,
		InvoicePDF:    invoicePDFUC,
		DashboardUC:   dashboardUC,
		AIUC:          aiUC,
		JWTSecret:     cfg.JWT.Secret,
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
