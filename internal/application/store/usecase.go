// Package store implementa el almacén de estado del inventario: ambas
// colecciones viven en memoria y cada mutación termina con una escritura
// write-through del snapshot completo (sin diffs, sin log de transacciones).
//
// Fiber atiende peticiones en paralelo; un mutex serializa las operaciones
// para que cada una se ejecute hasta completar sobre un estado consistente.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
	"github.com/jhoicas/stockpilot-api/pkg/logger"
)

const seedNote = "Stock inicial"

// Store almacén de estado del inventario. Obtener siempre vía New; no hay
// estado global ambiente, los handlers reciben la instancia inyectada.
type Store struct {
	mu   sync.Mutex
	snap *entity.Snapshot
	repo repository.SnapshotRepository
	log  *logger.Logger

	// inyectables en tests
	now   func() time.Time
	newID func() string
}

// New carga el snapshot persistido y construye el almacén. Un snapshot
// ilegible se sustituye por el vacío por defecto: se registra, no se propaga.
func New(ctx context.Context, repo repository.SnapshotRepository, log *logger.Logger) *Store {
	snap, err := repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("snapshot inicial ilegible, se parte de estado vacío")
		snap = entity.NewSnapshot()
	}
	snap.Normalize()
	return &Store{
		snap:  snap,
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Snapshot devuelve una copia profunda del estado actual (lectura segura
// fuera del mutex, para el renderer y el export CSV).
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snap)
}

// CreateItem valida y agrega un artículo. Con stock inicial > 0 antepone
// además un movimiento de ajuste que documenta la semilla.
func (s *Store) CreateItem(ctx context.Context, in dto.CreateItemRequest) (*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if s.snap.HasSKU(in.SKU) {
		return nil, domain.ErrDuplicateSKU
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.Item{
		ID:       s.newID(),
		SKU:      in.SKU,
		Name:     in.Name,
		Category: in.Category,
		Supplier: in.Supplier,
		Cost:     in.Cost,
		Price:    in.Price,
		Stock:    in.InitialStock,
	}
	s.snap.Items = append(s.snap.Items, item)

	if in.InitialStock > 0 {
		s.prependMove(&entity.Movement{
			ID:     s.newID(),
			TS:     s.now().UnixMilli(),
			Type:   entity.MovementTypeAdjust,
			ItemID: item.ID,
			Qty:    in.InitialStock,
			Unit:   in.Cost,
			Note:   seedNote,
		})
	}

	return cloneItem(item), s.persist(ctx)
}

// RecordMovement aplica la regla de signo según el tipo, verifica que un
// delta negativo no deje el stock por debajo de cero, muta el stock y
// antepone el registro a la historia.
func (s *Store) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) (*entity.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.snap.FindItem(in.ItemID)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Qty == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Regla de signo: compra fuerza +, venta fuerza -, ajuste tal cual (+/-).
	signed := in.Qty
	switch in.Type {
	case entity.MovementTypePurchase:
		signed = abs(in.Qty)
	case entity.MovementTypeSale:
		signed = -abs(in.Qty)
	}

	// Precio unitario: valor explícito, o precio del artículo en ventas y
	// costo en compras/ajustes.
	var unit decimal.Decimal
	switch {
	case in.Unit != nil:
		if in.Unit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		unit = *in.Unit
	case in.Type == entity.MovementTypeSale:
		unit = item.Price
	default:
		unit = item.Cost
	}

	if signed < 0 && item.Stock+signed < 0 {
		return nil, domain.ErrInsufficientStock
	}

	item.Stock += signed
	mov := &entity.Movement{
		ID:     s.newID(),
		TS:     s.now().UnixMilli(),
		Type:   in.Type,
		ItemID: item.ID,
		Qty:    signed,
		Unit:   unit,
		Note:   in.Note,
	}
	s.prependMove(mov)

	return cloneMovement(mov), s.persist(ctx)
}

// UpdateItem reemplaza todos los campos mutables, incluido Stock. La
// sobrescritura directa del stock NO genera movimiento en la historia;
// es la vía de corrección rápida.
func (s *Store) UpdateItem(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.snap.FindItem(id)
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if other := s.snap.FindBySKU(in.SKU); other != nil && other.ID != id {
		return nil, domain.ErrDuplicateSKU
	}

	item.SKU = in.SKU
	item.Name = in.Name
	item.Category = in.Category
	item.Supplier = in.Supplier
	item.Cost = in.Cost
	item.Price = in.Price
	item.Stock = in.Stock

	return cloneItem(item), s.persist(ctx)
}

// DeleteItem elimina el artículo. Los movimientos que lo referencian se
// conservan; el renderer los etiqueta con el marcador de artículo eliminado.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, it := range s.snap.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	s.snap.Items = append(s.snap.Items[:idx], s.snap.Items[idx+1:]...)
	return s.persist(ctx)
}

// DeleteMovement elimina el movimiento sin tocar el stock del artículo
// (política de no-rebalanceo; el aviso al usuario lo da la capa de UI).
func (s *Store) DeleteMovement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, m := range s.snap.Moves {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	s.snap.Moves = append(s.snap.Moves[:idx], s.snap.Moves[idx+1:]...)
	return s.persist(ctx)
}

// ClearMovements vacía la historia; los stocks quedan como están.
func (s *Store) ClearMovements(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Moves = []*entity.Movement{}
	return s.persist(ctx)
}

// Reset elimina artículos e historia y persiste el snapshot vacío.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = entity.NewSnapshot()
	return s.persist(ctx)
}

// ReplaceState sobrescribe el snapshot con un cuerpo arbitrario
// (POST /api/state: last-writer-wins, sin validación de esquema).
func (s *Store) ReplaceState(ctx context.Context, snap *entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.Normalize()
	s.snap = snap
	return s.persist(ctx)
}

// MergeImport aplica las reglas de mezcla del import CSV: los artículos se
// saltan si su id o su SKU ya existen; los movimientos se saltan si su id ya
// existe. Al final la historia completa se reordena por ts descendente.
func (s *Store) MergeImport(ctx context.Context, items []*entity.Item, moves []*entity.Movement) (dto.ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum dto.ImportSummary
	for _, it := range items {
		if s.snap.FindItem(it.ID) != nil || s.snap.HasSKU(it.SKU) {
			sum.ItemsSkipped++
			continue
		}
		s.snap.Items = append(s.snap.Items, cloneItem(it))
		sum.ItemsAdded++
	}
	for _, m := range moves {
		if s.findMove(m.ID) != nil {
			sum.MovesSkipped++
			continue
		}
		s.snap.Moves = append(s.snap.Moves, cloneMovement(m))
		sum.MovesAdded++
	}

	sort.SliceStable(s.snap.Moves, func(i, j int) bool {
		return s.snap.Moves[i].TS > s.snap.Moves[j].TS
	})

	return sum, s.persist(ctx)
}

// SeedDemo carga los datos de demostración. Solo tiene sentido sobre un
// sistema vacío; con artículos existentes devuelve ErrNotEmpty.
func (s *Store) SeedDemo(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.snap.Items) > 0 {
		return domain.ErrNotEmpty
	}

	demo := []*entity.Item{
		{SKU: "A-1001", Name: "Tornillos M6 (caja 100)", Category: "Accesorios", Supplier: "Fix&Co", Cost: decimal.NewFromFloat(4.20), Price: decimal.NewFromFloat(8.90), Stock: 25},
		{SKU: "B-2002", Name: "Bridas plásticas (bolsa 50)", Category: "Accesorios", Supplier: "Fix&Co", Cost: decimal.NewFromFloat(2.10), Price: decimal.NewFromFloat(5.50), Stock: 8},
		{SKU: "C-3003", Name: "WD-40 400ml", Category: "Taller", Supplier: "IndustrialPartner", Cost: decimal.NewFromFloat(3.30), Price: decimal.NewFromFloat(7.90), Stock: 3},
	}
	for _, d := range demo {
		d.ID = s.newID()
		s.snap.Items = append(s.snap.Items, d)
	}
	s.prependMove(&entity.Movement{
		ID:     s.newID(),
		TS:     s.now().UnixMilli(),
		Type:   entity.MovementTypeAdjust,
		ItemID: demo[0].ID,
		Qty:    25,
		Unit:   decimal.NewFromFloat(4.20),
		Note:   seedNote,
	})

	return s.persist(ctx)
}

// persist escribe el snapshot completo. Ante un fallo de escritura el estado
// en memoria NO se revierte: memoria y almacenamiento pueden divergir hasta
// la siguiente escritura exitosa.
func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.snap); err != nil {
		s.log.Error().Err(err).Msg("persistir snapshot")
		return fmt.Errorf("persistir snapshot: %w", err)
	}
	return nil
}

// prependMove inserta al inicio: la historia va de más reciente a más antiguo.
func (s *Store) prependMove(m *entity.Movement) {
	s.snap.Moves = append([]*entity.Movement{m}, s.snap.Moves...)
}

func (s *Store) findMove(id string) *entity.Movement {
	for _, m := range s.snap.Moves {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func cloneItem(it *entity.Item) *entity.Item {
	c := *it
	return &c
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	c := *m
	return &c
}

func cloneSnapshot(s *entity.Snapshot) *entity.Snapshot {
	out := &entity.Snapshot{
		Items: make([]*entity.Item, 0, len(s.Items)),
		Moves: make([]*entity.Movement, 0, len(s.Moves)),
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, cloneItem(it))
	}
	for _, m := range s.Moves {
		out.Moves = append(out.Moves, cloneMovement(m))
	}
	return out
}
