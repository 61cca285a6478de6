package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/storage"
)

func newRepo(t *testing.T) (*storage.FileSnapshotRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datos", "stockpilot.json")
	repo, err := storage.NewFileSnapshotRepository(path)
	require.NoError(t, err, "debe crear el directorio de datos")
	return repo, path
}

func TestLoad_ArchivoAusenteDevuelveVacioSinError(t *testing.T) {
	repo, _ := newRepo(t)

	snap, err := repo.Load(context.Background())

	require.NoError(t, err, "la ausencia del archivo no es un error")
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Moves)
	assert.NotNil(t, snap.Items, "slices vacíos, no nulos")
}

func TestLoad_JSONIlegibleDevuelveVacioConError(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	snap, err := repo.Load(context.Background())

	require.ErrorIs(t, err, domain.ErrCorruptSnapshot)
	require.NotNil(t, snap, "aun con error se devuelve el snapshot vacío por defecto")
	assert.Empty(t, snap.Items)
}

func TestSaveLoad_IdaYVuelta(t *testing.T) {
	repo, _ := newRepo(t)
	snap := &entity.Snapshot{
		Items: []*entity.Item{
			{ID: "i-1", SKU: "A-1001", Name: "Tornillos", Cost: decimal.RequireFromString("4.2"), Price: decimal.RequireFromString("8.9"), Stock: 25},
		},
		Moves: []*entity.Movement{
			{ID: "m-1", TS: 1700000000000, Type: entity.MovementTypeSale, ItemID: "i-1", Qty: -3, Unit: decimal.RequireFromString("8.9")},
		},
	}

	require.NoError(t, repo.Save(context.Background(), snap))
	leido, err := repo.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, leido.Items, 1)
	assert.Equal(t, "A-1001", leido.Items[0].SKU)
	assert.True(t, leido.Items[0].Cost.Equal(decimal.RequireFromString("4.2")))
	require.Len(t, leido.Moves, 1)
	assert.Equal(t, int64(1700000000000), leido.Moves[0].TS)
}

func TestSave_NumerosPlanosEnElJSON(t *testing.T) {
	repo, path := newRepo(t)
	snap := entity.NewSnapshot()
	snap.Items = append(snap.Items, &entity.Item{
		ID: "i-1", SKU: "A-1001", Name: "Tornillos",
		Cost: decimal.RequireFromString("4.2"), Price: decimal.RequireFromString("8.9"),
	})

	require.NoError(t, repo.Save(context.Background(), snap))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cost": 4.2`, "los importes van como números JSON, no como cadenas")
}

func TestSave_NoDejaTemporales(t *testing.T) {
	repo, path := newRepo(t)

	require.NoError(t, repo.Save(context.Background(), entity.NewSnapshot()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "el temporal desaparece tras el rename")
}
