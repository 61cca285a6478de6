package repository

import (
	"context"

	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// SnapshotRepository es el puerto de persistencia del snapshot completo.
// Contrato (igual para archivo y PostgreSQL):
//   - Load sin datos previos devuelve el snapshot vacío por defecto, sin error.
//   - Load con datos ilegibles devuelve el snapshot vacío Y domain.ErrCorruptSnapshot,
//     para que la capa HTTP pueda responder 500 con el cuerpo por defecto.
//   - Save escribe el snapshot entero de forma atómica (last-writer-wins,
//     sin bloqueo ni versionado).
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snap *entity.Snapshot) error
}
