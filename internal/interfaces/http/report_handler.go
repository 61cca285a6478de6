package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/store"
	"github.com/jhoicas/stockpilot-api/internal/application/view"
)

// InventoryPDFGenerator puerto del generador de informes.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(view dto.ItemsViewResponse, generatedAt time.Time) ([]byte, error)
}

// ReportHandler genera el informe de inventario en PDF.
type ReportHandler struct {
	store     *store.Store
	renderer  *view.Renderer
	generator InventoryPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(st *store.Store, r *view.Renderer, g InventoryPDFGenerator) *ReportHandler {
	return &ReportHandler{store: st, renderer: r, generator: g}
}

// Inventory godoc
// @Summary      Informe PDF del inventario actual (KPIs + tabla)
// @Tags         reports
// @Produce      application/pdf
// @Param        search  query  string  false  "Mismo filtro de texto que /api/items"
// @Param        stock   query  string  false  "Mismo filtro de stock que /api/items"
// @Success      200  {string}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	now := time.Now()
	viewData := h.renderer.Items(h.store.Snapshot(), c.Query("search"), c.Query("stock"))

	data, err := h.generator.GenerateInventoryPDF(viewData, now)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario_`+now.Format("2006-01-02")+`.pdf"`)
	return c.Send(data)
}
