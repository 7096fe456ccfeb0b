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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/activos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/activos-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/activos-api/internal/interfaces/http"
	"github.com/jhoicas/activos-api/pkg/config"
	"github.com/jhoicas/activos-api/pkg/logger"
)

// @title                       Activos API
// @version                     1.0
// @description                 Inventario de activos: libro de stock, bajas y componentes de PC.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	accountRepo := postgres.NewAccountRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	locationRepo := postgres.NewStorageLocationRepository(pool)
	roomRepo := postgres.NewRoomLocationRepository(pool)
	stockRepo := postgres.NewStockEntryRepository(pool)
	disposalRepo := postgres.NewDisposalRepository(pool)
	pcRepo := postgres.NewPCRepository(pool)
	specRepo := postgres.NewSpecificationFieldRepository(pool)
	componentRepo := postgres.NewPCComponentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Núcleo: libro de stock → disponibilidad → bajas / componentes
	ledger := inventory.NewStockLedger(txRunner, stockRepo, itemRepo, locationRepo)
	availability := inventory.NewAvailabilityCalculator(stockRepo, componentRepo, itemRepo)
	disposals := inventory.NewDisposalEngine(
		txRunner, ledger, availability,
		disposalRepo, stockRepo, itemRepo, locationRepo, log,
	)
	builds := inventory.NewPCBuildManager(
		txRunner, ledger, availability,
		componentRepo, pcRepo, itemRepo, stockRepo, log,
	)
	reports := inventory.NewReportService(
		disposals, availability,
		stockRepo, itemRepo, locationRepo, accountRepo,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		spreadsheet.NewExcelExporter(),
	)

	authUC := auth.NewAuthUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (generar con `swag init -g cmd/api/main.go`)
	const specPath = "./docs/swagger.json"
	if _, err := os.Stat(specPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: specPath,
			Path:     "docs",
			Title:    "Activos API",
		}))
	} else {
		log.Warn().Str("path", specPath).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AccountUC:    usecase.NewAccountUseCase(accountRepo),
		CatalogUC:    usecase.NewCatalogUseCase(brandRepo, categoryRepo, locationRepo, roomRepo),
		ItemUC:       usecase.NewItemUseCase(itemRepo, categoryRepo, brandRepo),
		PCUC:         usecase.NewPCUseCase(pcRepo, roomRepo, categoryRepo, specRepo),
		Ledger:       ledger,
		Availability: availability,
		Disposals:    disposals,
		Builds:       builds,
		Reports:      reports,
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
