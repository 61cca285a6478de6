// Package storage implementa el puerto SnapshotRepository sobre dos medios:
// un archivo JSON local y una fila JSONB en PostgreSQL. El contrato es
// idéntico: snapshot completo, last-writer-wins, sin bloqueo ni versionado.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*FileSnapshotRepository)(nil)

// FileSnapshotRepository persiste el snapshot en un único archivo JSON.
type FileSnapshotRepository struct {
	path string
}

// NewFileSnapshotRepository crea el directorio de datos si no existe.
func NewFileSnapshotRepository(path string) (*FileSnapshotRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	return &FileSnapshotRepository{path: path}, nil
}

// Load lee el archivo completo. Archivo ausente → snapshot vacío sin error;
// JSON ilegible → snapshot vacío más ErrCorruptSnapshot.
func (r *FileSnapshotRepository) Load(_ context.Context) (*entity.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
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

// Save escribe el snapshot entero vía archivo temporal + rename, para que
// nunca sea visible una escritura parcial.
func (r *FileSnapshotRepository) Save(_ context.Context, snap *entity.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir snapshot temporal: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("publicar snapshot: %w", err)
	}
	return nil
}
