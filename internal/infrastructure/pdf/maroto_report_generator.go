// Package pdf genera el informe de inventario en PDF (A4) con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StockPilot — Informe de inventario + fecha         │
//	│  KPIs: artículos / unidades / valor / ingresos              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Categoría | Costo | Precio | Stock   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator genera el informe de inventario usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del inventario actual y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(view dto.ItemsViewResponse, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("StockPilot — Informe de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(view.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range view.Rows {
		m.AddRows(itemRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("StockPilot — Informe de inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 4, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

// kpiRow: los cuatro indicadores en una línea.
func kpiRow(k dto.KPIsDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}),
		)
	}
	return row.New(12).Add(
		kpi("Artículos", strconv.Itoa(k.ItemCount)),
		kpi("Unidades en stock", strconv.Itoa(k.TotalStockUnits)),
		kpi("Valor de inventario", k.ValueDisplay),
		kpi("Ingresos (ventas)", k.RevenueDisplay),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, alignTo align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: alignTo,
		}))
	}
	return row.New(7).Add(
		header(2, "SKU", align.Left),
		header(4, "Nombre", align.Left),
		header(2, "Categoría", align.Left),
		header(1, "Costo", align.Right),
		header(1, "Precio", align.Right),
		header(1, "Stock", align.Right),
		header(1, "Valor", align.Right),
	)
}

func itemRow(r dto.ItemRowDTO) core.Row {
	cell := func(size int, value string, alignTo align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: alignTo}))
	}
	return row.New(6).Add(
		cell(2, r.SKU, align.Left),
		cell(4, r.Name, align.Left),
		cell(2, r.Category, align.Left),
		cell(1, r.CostDisplay, align.Right),
		cell(1, r.PriceDisplay, align.Right),
		cell(1, strconv.Itoa(r.Stock), align.Right),
		cell(1, r.ValueDisplay, align.Right),
	)
}
