// Package view deriva las tablas y los KPIs visibles a partir del snapshot.
// Es función pura de (estado, texto de búsqueda, filtro de stock): no muta
// nada y recalcula los indicadores en cada llamada.
package view

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// Filtros de stock admitidos.
const (
	StockFilterNone = ""
	StockFilterLow  = "low"  // stock <= 5
	StockFilterZero = "zero" // stock == 0
)

const lowStockThreshold = 5

// DeletedItemLabel marcador para movimientos cuyo artículo ya no existe.
const DeletedItemLabel = "Artículo eliminado"

// Renderer produce filas de tabla y KPIs. El orden de artículos es siempre
// SKU ascendente con comparación locale-aware; la historia conserva el orden
// de inserción (más reciente primero) independientemente de los filtros.
//
// Los importes se formatean con la localización de-DE (EUR) y los SKU se
// ordenan con la colación alemana, vía collate y message de x/text.
type Renderer struct {
	coll    *collate.Collator
	printer *message.Printer
}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		coll:    collate.New(language.German),
		printer: message.NewPrinter(language.German),
	}
}

// Items filtra, ordena y proyecta la tabla de artículos más los KPIs.
func (r *Renderer) Items(snap *entity.Snapshot, search, stockFilter string) dto.ItemsViewResponse {
	rows := make([]dto.ItemRowDTO, 0, len(snap.Items))
	for _, it := range snap.Items {
		if !it.MatchesQuery(search) {
			continue
		}
		switch stockFilter {
		case StockFilterLow:
			if it.Stock > lowStockThreshold {
				continue
			}
		case StockFilterZero:
			if it.Stock != 0 {
				continue
			}
		}
		value := it.StockValue()
		rows = append(rows, dto.ItemRowDTO{
			ID:           it.ID,
			SKU:          it.SKU,
			Name:         it.Name,
			Category:     it.Category,
			Supplier:     it.Supplier,
			Cost:         it.Cost,
			Price:        it.Price,
			Stock:        it.Stock,
			Value:        value,
			LowStock:     it.Stock <= lowStockThreshold,
			CostDisplay:  r.eur(it.Cost),
			PriceDisplay: r.eur(it.Price),
			ValueDisplay: r.eur(value),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return r.coll.CompareString(rows[i].SKU, rows[j].SKU) < 0
	})

	return dto.ItemsViewResponse{Rows: rows, KPIs: r.KPIs(snap)}
}

// Movements proyecta la historia completa en orden de inserción. Las
// referencias colgantes caen al marcador de artículo eliminado.
func (r *Renderer) Movements(snap *entity.Snapshot) dto.MovementsViewResponse {
	rows := make([]dto.MovementRowDTO, 0, len(snap.Moves))
	for _, m := range snap.Moves {
		sku, name := "—", DeletedItemLabel
		if it := snap.FindItem(m.ItemID); it != nil {
			sku, name = it.SKU, it.Name
		}
		total := m.Total()
		rows = append(rows, dto.MovementRowDTO{
			ID:           m.ID,
			TS:           m.TS,
			DateDisplay:  m.Time().Format("02.01.2006 15:04"),
			Type:         m.Type,
			TypeLabel:    typeLabel(m.Type),
			SKU:          sku,
			ItemName:     name,
			Qty:          m.Qty,
			Unit:         m.Unit,
			Total:        total,
			UnitDisplay:  r.eur(m.Unit),
			TotalDisplay: r.eur(total),
			Note:         m.Note,
		})
	}
	return dto.MovementsViewResponse{Rows: rows}
}

// KPIs recalcula los indicadores desde cero: número de artículos, unidades
// totales, valor de inventario (Σ stock × costo) e ingresos (Σ |qty| × unit
// solo sobre ventas).
func (r *Renderer) KPIs(snap *entity.Snapshot) dto.KPIsDTO {
	totalStock := 0
	value := decimal.Zero
	for _, it := range snap.Items {
		totalStock += it.Stock
		value = value.Add(it.StockValue())
	}

	revenue := decimal.Zero
	for _, m := range snap.Moves {
		if m.Type != entity.MovementTypeSale {
			continue
		}
		qty := m.Qty
		if qty < 0 {
			qty = -qty
		}
		revenue = revenue.Add(m.Unit.Mul(decimal.NewFromInt(int64(qty))))
	}

	return dto.KPIsDTO{
		ItemCount:       len(snap.Items),
		TotalStockUnits: totalStock,
		InventoryValue:  value,
		Revenue:         revenue,
		ValueDisplay:    r.eur(value),
		RevenueDisplay:  r.eur(revenue),
	}
}

func (r *Renderer) eur(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return r.printer.Sprintf("%.2f €", f)
}

func typeLabel(t string) string {
	switch t {
	case entity.MovementTypePurchase:
		return "Compra"
	case entity.MovementTypeSale:
		return "Venta"
	default:
		return "Ajuste"
	}
}
