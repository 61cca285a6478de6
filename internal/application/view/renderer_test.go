package view_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/internal/application/view"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// snapDemo inventario pequeño con stocks 25 / 8 / 0 y una venta registrada.
func snapDemo() *entity.Snapshot {
	return &entity.Snapshot{
		Items: []*entity.Item{
			{ID: "i-2", SKU: "B-2002", Name: "Bridas", Category: "Accesorios", Supplier: "Fix&Co", Cost: dec("2.10"), Price: dec("5.50"), Stock: 8},
			{ID: "i-1", SKU: "A-1001", Name: "Tornillos", Category: "Accesorios", Supplier: "Fix&Co", Cost: dec("4.20"), Price: dec("8.90"), Stock: 25},
			{ID: "i-3", SKU: "C-3003", Name: "WD-40", Category: "Taller", Supplier: "IndustrialPartner", Cost: dec("3.30"), Price: dec("7.90"), Stock: 0},
		},
		Moves: []*entity.Movement{
			{ID: "m-2", TS: 2000, Type: entity.MovementTypeSale, ItemID: "i-1", Qty: -3, Unit: dec("8.90")},
			{ID: "m-1", TS: 1000, Type: entity.MovementTypeAdjust, ItemID: "i-1", Qty: 25, Unit: dec("4.20"), Note: "Stock inicial"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de artículos
// ──────────────────────────────────────────────────────────────────────────────

func TestItems_OrdenPorSKUAscendente(t *testing.T) {
	r := view.NewRenderer()

	out := r.Items(snapDemo(), "", view.StockFilterNone)

	require.Len(t, out.Rows, 3)
	assert.Equal(t, "A-1001", out.Rows[0].SKU)
	assert.Equal(t, "B-2002", out.Rows[1].SKU)
	assert.Equal(t, "C-3003", out.Rows[2].SKU)
}

func TestItems_BusquedaInsensibleAMayusculas(t *testing.T) {
	r := view.NewRenderer()

	out := r.Items(snapDemo(), "torni", view.StockFilterNone)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Tornillos", out.Rows[0].Name)

	out = r.Items(snapDemo(), "INDUSTRIAL", view.StockFilterNone)
	require.Len(t, out.Rows, 1, "la búsqueda también cubre el proveedor")
	assert.Equal(t, "C-3003", out.Rows[0].SKU)

	out = r.Items(snapDemo(), "no-existe", view.StockFilterNone)
	assert.Empty(t, out.Rows)
}

func TestItems_FiltrosDeStock(t *testing.T) {
	r := view.NewRenderer()

	out := r.Items(snapDemo(), "", view.StockFilterZero)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "C-3003", out.Rows[0].SKU)

	// low incluye el cero: stock <= 5.
	out = r.Items(snapDemo(), "", view.StockFilterLow)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "C-3003", out.Rows[0].SKU)
	assert.True(t, out.Rows[0].LowStock)
}

func TestItems_KPIsNoDependenDelFiltro(t *testing.T) {
	r := view.NewRenderer()

	filtrado := r.Items(snapDemo(), "torni", view.StockFilterNone)
	completo := r.Items(snapDemo(), "", view.StockFilterNone)

	assert.Equal(t, completo.KPIs, filtrado.KPIs, "los KPIs se calculan sobre el estado completo")
}

func TestItems_FormatoEuropeo(t *testing.T) {
	r := view.NewRenderer()

	out := r.Items(snapDemo(), "", view.StockFilterNone)

	// de-DE: coma decimal y símbolo al final.
	assert.Equal(t, "4,20 €", out.Rows[0].CostDisplay)
	assert.Equal(t, "8,90 €", out.Rows[0].PriceDisplay)
	assert.Equal(t, "105,00 €", out.Rows[0].ValueDisplay, "25 × 4,20")
}

// ──────────────────────────────────────────────────────────────────────────────
// Historia de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_OrdenDeInsercionYEtiquetas(t *testing.T) {
	r := view.NewRenderer()

	out := r.Movements(snapDemo())

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "m-2", out.Rows[0].ID, "la historia se proyecta tal cual, más reciente primero")
	assert.Equal(t, "Venta", out.Rows[0].TypeLabel)
	assert.Equal(t, "Ajuste", out.Rows[1].TypeLabel)
	assert.Equal(t, "Tornillos", out.Rows[0].ItemName)
	assert.True(t, out.Rows[0].Total.Equal(dec("-26.70")), "total = qty × unit con signo")
}

func TestMovements_ArticuloEliminado(t *testing.T) {
	r := view.NewRenderer()
	snap := snapDemo()
	snap.Items = snap.Items[:0] // todos los artículos borrados, la historia queda

	out := r.Movements(snap)

	require.Len(t, out.Rows, 2)
	for _, row := range out.Rows {
		assert.Equal(t, view.DeletedItemLabel, row.ItemName)
		assert.Equal(t, "—", row.SKU)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// KPIs
// ──────────────────────────────────────────────────────────────────────────────

func TestKPIs_Calculo(t *testing.T) {
	r := view.NewRenderer()

	kpis := r.KPIs(snapDemo())

	assert.Equal(t, 3, kpis.ItemCount)
	assert.Equal(t, 33, kpis.TotalStockUnits)
	// 25×4.20 + 8×2.10 + 0×3.30 = 121.80
	assert.True(t, kpis.InventoryValue.Equal(dec("121.80")), "valor = Σ stock × costo, fue %s", kpis.InventoryValue)
	// Solo la venta cuenta como ingreso: |−3| × 8.90 = 26.70
	assert.True(t, kpis.Revenue.Equal(dec("26.70")), "ingresos = Σ |qty| × unit sobre ventas, fue %s", kpis.Revenue)
	assert.Equal(t, "121,80 €", kpis.ValueDisplay)
}

func TestKPIs_EstadoVacio(t *testing.T) {
	r := view.NewRenderer()

	kpis := r.KPIs(entity.NewSnapshot())

	assert.Zero(t, kpis.ItemCount)
	assert.Zero(t, kpis.TotalStockUnits)
	assert.True(t, kpis.InventoryValue.IsZero())
	assert.True(t, kpis.Revenue.IsZero())
	assert.Equal(t, "0,00 €", kpis.ValueDisplay)
}
