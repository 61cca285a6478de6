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

	"github.com/jhoicas/stockpilot-api/internal/application/store"
	"github.com/jhoicas/stockpilot-api/internal/application/view"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/stockpilot-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/stockpilot-api/internal/interfaces/http"
	"github.com/jhoicas/stockpilot-api/pkg/config"
	"github.com/jhoicas/stockpilot-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	snapshots, cleanup, err := buildSnapshotRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer cleanup()

	st := store.New(ctx, snapshots, log)
	renderer := view.NewRenderer()
	reportGenerator := infrapdf.NewMarotoReportGenerator()

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
		Title:    "StockPilot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:     st,
		Renderer:  renderer,
		Snapshots: snapshots,
		Reports:   reportGenerator,
	})

	// SPA estático (al final para no tapar /api)
	if cfg.HTTP.StaticDir != "" {
		app.Static("/", cfg.HTTP.StaticDir)
	}

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

// buildSnapshotRepository selecciona el backend de persistencia según STORAGE_DRIVER.
func buildSnapshotRepository(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := storage.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		repo, err := storage.NewPostgresSnapshotRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		repo, err := storage.NewFileSnapshotRepository(cfg.Storage.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
