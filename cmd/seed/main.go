// seed carga los datos de demostración en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed
// Respeta STORAGE_DRIVER / DATA_FILE / DATABASE_URL igual que el servidor.
// Falla si el inventario ya tiene artículos.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/stockpilot-api/internal/application/store"
	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/storage"
	"github.com/jhoicas/stockpilot-api/pkg/config"
	"github.com/jhoicas/stockpilot-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	ctx := context.Background()

	var snapshots repository.SnapshotRepository
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := storage.NewPool(ctx, cfg.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()
		snapshots, err = storage.NewPostgresSnapshotRepository(ctx, pool)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Preparar tabla de estado: %v\n", err)
			os.Exit(1)
		}
	default:
		snapshots, err = storage.NewFileSnapshotRepository(cfg.Storage.DataFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Preparar archivo de datos: %v\n", err)
			os.Exit(1)
		}
	}

	st := store.New(ctx, snapshots, log)
	if err := st.SeedDemo(ctx); err != nil {
		if errors.Is(err, domain.ErrNotEmpty) {
			fmt.Fprintln(os.Stderr, "El inventario ya contiene artículos; no se cargan datos de demostración.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Cargar datos de demostración: %v\n", err)
		os.Exit(1)
	}

	snap := st.Snapshot()
	log.Info().
		Int("items", len(snap.Items)).
		Int("moves", len(snap.Moves)).
		Msg("datos de demostración cargados")
}
