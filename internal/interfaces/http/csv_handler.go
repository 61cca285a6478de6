package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/csvio"
	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/store"
)

// CSVHandler exporta e importa el formato CSV de dos secciones.
type CSVHandler struct {
	store *store.Store
}

// NewCSVHandler construye el handler.
func NewCSVHandler(st *store.Store) *CSVHandler {
	return &CSVHandler{store: st}
}

// Export godoc
// @Summary      Descargar artículos e historia como CSV de dos secciones
// @Tags         csv
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export.csv [get]
func (h *CSVHandler) Export(c *fiber.Ctx) error {
	doc := csvio.Export(h.store.Snapshot())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+csvio.Filename(time.Now())+`"`)
	return c.SendString(doc)
}

// Import godoc
// @Summary      Mezclar un CSV exportado con el estado actual
// @Description  Nunca sobrescribe: artículos con id o SKU existentes y
//               movimientos con id existente se saltan; tras mezclar, la
//               historia se reordena por fecha descendente. Filas
//               malformadas se descartan en silencio.
// @Tags         csv
// @Accept       text/csv
// @Produce      json
// @Success      200  {object}  dto.ImportSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/import.csv [post]
func (h *CSVHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "CSV vacío"})
	}
	items, moves := csvio.Import(string(body))
	sum, err := h.store.MergeImport(c.Context(), items, moves)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sum)
}
