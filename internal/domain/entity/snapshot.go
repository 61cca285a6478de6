package entity

import "strings"

// Snapshot es la unidad completa de persistencia: ambas colecciones se
// escriben enteras en cada mutación (sin diffs ni log de transacciones).
// Los nombres de campo JSON coinciden con el formato que consume el cliente
// web, de modo que los archivos stockpilot.json existentes cargan sin
// migración.
type Snapshot struct {
	Items []*Item     `json:"items"`
	Moves []*Movement `json:"moves"`
}

// NewSnapshot devuelve el snapshot vacío por defecto (colecciones no nulas
// para que serialice como [] y no como null).
func NewSnapshot() *Snapshot {
	return &Snapshot{Items: []*Item{}, Moves: []*Movement{}}
}

// Normalize sustituye colecciones nulas por vacías. Se aplica tras
// deserializar datos externos (archivo, DB o POST /api/state).
func (s *Snapshot) Normalize() {
	if s.Items == nil {
		s.Items = []*Item{}
	}
	if s.Moves == nil {
		s.Moves = []*Movement{}
	}
}

// FindItem busca un artículo por ID; nil si no existe.
func (s *Snapshot) FindItem(id string) *Item {
	for _, it := range s.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// HasSKU indica si algún artículo usa ese SKU (sin distinguir mayúsculas).
func (s *Snapshot) HasSKU(sku string) bool {
	return s.FindBySKU(sku) != nil
}

// FindBySKU busca un artículo por SKU (sin distinguir mayúsculas).
func (s *Snapshot) FindBySKU(sku string) *Item {
	for _, it := range s.Items {
		if strings.EqualFold(it.SKU, sku) {
			return it
		}
	}
	return nil
}
