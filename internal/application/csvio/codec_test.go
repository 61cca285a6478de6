package csvio_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/internal/application/csvio"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFilename_FechaISOEnUTC(t *testing.T) {
	ts := time.Date(2026, 8, 28, 23, 30, 0, 0, time.FixedZone("CET+2", 2*3600))
	assert.Equal(t, "stockpilot_export_2026-08-28.csv", csvio.Filename(ts))
}

func TestExport_DosSeccionesConCabeceras(t *testing.T) {
	snap := &entity.Snapshot{
		Items: []*entity.Item{
			{ID: "i-1", SKU: "A-1001", Name: "Tornillos M6", Category: "Accesorios", Supplier: "Fix&Co", Cost: dec("4.2"), Price: dec("8.9"), Stock: 25},
		},
		Moves: []*entity.Movement{
			{ID: "m-1", TS: 1700000000000, Type: entity.MovementTypeSale, ItemID: "i-1", Qty: -3, Unit: dec("8.9"), Note: "mostrador"},
		},
	}

	out := csvio.Export(snap)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "SECTION,items", lines[0])
	assert.Equal(t, "id,sku,name,category,supplier,cost,price,stock", lines[1])
	assert.Equal(t, "i-1,A-1001,Tornillos M6,Accesorios,Fix&Co,4.2,8.9,25", lines[2])
	assert.Contains(t, out, "SECTION,moves")
	assert.Contains(t, out, "id,ts,type,itemId,qty,unit,note")
	assert.Contains(t, out, "m-1,1700000000000,sale,i-1,-3,8.9,mostrador")
}

func TestExport_EntrecomillaCamposConComasYComillas(t *testing.T) {
	snap := &entity.Snapshot{
		Items: []*entity.Item{
			{ID: "i-1", SKU: "A-1001", Name: `Tubo 1/2", flexible`, Supplier: "Acme, S.L."},
		},
		Moves: []*entity.Movement{},
	}

	out := csvio.Export(snap)

	assert.Contains(t, out, `"Tubo 1/2"", flexible"`, "comilla embebida doblada y campo entrecomillado")
	assert.Contains(t, out, `"Acme, S.L."`)
}

func TestImport_IdaYVuelta(t *testing.T) {
	snap := &entity.Snapshot{
		Items: []*entity.Item{
			{ID: "i-1", SKU: "A-1001", Name: "Tornillos, caja", Category: "Accesorios", Supplier: "Fix&Co", Cost: dec("4.2"), Price: dec("8.9"), Stock: 25},
			{ID: "i-2", SKU: "B-2002", Name: "Bridas", Cost: dec("2.1"), Price: dec("5.5"), Stock: 8},
		},
		Moves: []*entity.Movement{
			{ID: "m-1", TS: 2000, Type: entity.MovementTypeSale, ItemID: "i-1", Qty: -3, Unit: dec("8.9"), Note: "mostrador"},
			{ID: "m-2", TS: 1000, Type: entity.MovementTypeAdjust, ItemID: "i-1", Qty: 25, Unit: dec("4.2"), Note: "Stock inicial"},
		},
	}

	items, moves := csvio.Import(csvio.Export(snap))

	require.Len(t, items, 2)
	require.Len(t, moves, 2)
	assert.Equal(t, "Tornillos, caja", items[0].Name)
	assert.True(t, items[0].Cost.Equal(dec("4.2")))
	assert.Equal(t, 25, items[0].Stock)
	assert.Equal(t, int64(2000), moves[0].TS)
	assert.Equal(t, -3, moves[0].Qty)
	assert.Equal(t, "Stock inicial", moves[1].Note)
}

func TestImport_DialectoPermisivo(t *testing.T) {
	// \r\n, espacios alrededor de los valores, coma decimal y línea en blanco.
	doc := "SECTION,items\r\n" +
		"id,sku,name,category,supplier,cost,price,stock\r\n" +
		" i-1 , A-1001 , Tornillos ,, Fix&Co , 4,20 , 8.90 , 25 \r\n" +
		"\r\n" +
		"SECTION,moves\r\n" +
		"id,ts,type,itemId,qty,unit,note\r\n" +
		"m-1,1000,adjust,i-1,25,4.20,\r\n"

	items, moves := csvio.Import(doc)

	require.Len(t, items, 1)
	assert.Equal(t, "i-1", items[0].ID)
	assert.Equal(t, "Tornillos", items[0].Name, "los valores llegan recortados")
	// "4,20" sin comillas se divide en dos campos y desplaza las columnas.
	assert.True(t, items[0].Cost.Equal(dec("4")))
	assert.True(t, items[0].Price.Equal(dec("20")))
	assert.Equal(t, 8, items[0].Stock, "8.90 cae en stock y se trunca")

	require.Len(t, moves, 1)
	assert.Equal(t, 25, moves[0].Qty)
}

func TestImport_FilasMalformadasSeSaltan(t *testing.T) {
	doc := strings.Join([]string{
		"SECTION,items",
		"id,sku,name,category,supplier,cost,price,stock",
		"i-1,A-1001,Tornillos,Acc,Fix,4.2,8.9,25",
		",B-2002,Sin id,Acc,Fix,1,1,1",
		"i-3,,Sin SKU,Acc,Fix,1,1,1",
		"i-4,C-3003,Corta",
		"SECTION,moves",
		"id,ts,type,itemId,qty,unit,note",
		"m-1,no-numero,sale,i-1,1,1,",
		"m-2,1000,sale,i-1,2,8.9,ok",
	}, "\n")

	items, moves := csvio.Import(doc)

	require.Len(t, items, 1, "solo la fila completa sobrevive")
	assert.Equal(t, "i-1", items[0].ID)
	require.Len(t, moves, 1, "el ts no numérico invalida la fila")
	assert.Equal(t, "m-2", moves[0].ID)
}

func TestImport_FueraDeSeccionSeIgnora(t *testing.T) {
	doc := strings.Join([]string{
		"i-0,X-0,Sin sección,,,1,1,1",
		"SECTION,items",
		"id,sku,name,category,supplier,cost,price,stock",
		"i-1,A-1001,Tornillos,,,1,1,1",
	}, "\n")

	items, moves := csvio.Import(doc)

	require.Len(t, items, 1)
	assert.Equal(t, "i-1", items[0].ID)
	assert.Empty(t, moves)
}

func TestImport_CampoEntrecomilladoConSaltoDeLinea(t *testing.T) {
	doc := "SECTION,items\n" +
		"id,sku,name,category,supplier,cost,price,stock\n" +
		"i-1,A-1001,\"Tornillos\nM6\",,,1,1,1\n"

	items, _ := csvio.Import(doc)

	require.Len(t, items, 1)
	assert.Equal(t, "Tornillos\nM6", items[0].Name, "el salto embebido no parte la fila")
}
