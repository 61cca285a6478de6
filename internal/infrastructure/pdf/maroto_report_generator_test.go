package pdf_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/pdf"
)

func TestGenerateInventoryPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	view := dto.ItemsViewResponse{
		Rows: []dto.ItemRowDTO{
			{
				SKU: "A-1001", Name: "Tornillos M6", Category: "Accesorios",
				Cost: decimal.RequireFromString("4.2"), Price: decimal.RequireFromString("8.9"),
				Stock: 25, CostDisplay: "4,20 €", PriceDisplay: "8,90 €", ValueDisplay: "105,00 €",
			},
		},
		KPIs: dto.KPIsDTO{
			ItemCount: 1, TotalStockUnits: 25,
			ValueDisplay: "105,00 €", RevenueDisplay: "0,00 €",
		},
	}

	data, err := g.GenerateInventoryPDF(view, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "cabecera PDF válida")
}

func TestGenerateInventoryPDF_SinFilas(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()

	data, err := g.GenerateInventoryPDF(dto.ItemsViewResponse{}, time.Now())

	require.NoError(t, err, "un inventario vacío sigue produciendo el informe con KPIs a cero")
	assert.NotEmpty(t, data)
}
