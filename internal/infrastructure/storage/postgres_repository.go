package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
	"github.com/jhoicas/stockpilot-api/pkg/config"
)

var _ repository.SnapshotRepository = (*PostgresSnapshotRepository)(nil)

// El snapshot vive en una única fila JSONB; el CHECK fija id = 1 para que la
// tabla nunca tenga más de un estado (mismo contrato que el archivo).
const createStateTable = `
	CREATE TABLE IF NOT EXISTS stockpilot_state (
		id         smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		data       jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`

// NewPool crea el pool de conexiones PostgreSQL y verifica la conexión.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// PostgresSnapshotRepository persiste el snapshot como una fila JSONB.
type PostgresSnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSnapshotRepository asegura la tabla de estado.
func NewPostgresSnapshotRepository(ctx context.Context, pool *pgxpool.Pool) (*PostgresSnapshotRepository, error) {
	if _, err := pool.Exec(ctx, createStateTable); err != nil {
		return nil, fmt.Errorf("crear tabla de estado: %w", err)
	}
	return &PostgresSnapshotRepository{pool: pool}, nil
}

// Load lee la fila única. Sin fila → snapshot vacío sin error; JSONB que no
// deserializa al esquema → snapshot vacío más ErrCorruptSnapshot.
func (r *PostgresSnapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM stockpilot_state WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.NewSnapshot(), nil
		}
		return entity.NewSnapshot(), fmt.Errorf("leer snapshot: %w", err)
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return entity.NewSnapshot(), fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save upsert de la fila única (last-writer-wins).
func (r *PostgresSnapshotRepository) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO stockpilot_state (id, data, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		data,
	)
	if err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}
