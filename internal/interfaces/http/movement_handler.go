package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/store"
	"github.com/jhoicas/stockpilot-api/internal/application/view"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP de la historia de movimientos.
type MovementHandler struct {
	store    *store.Store
	renderer *view.Renderer
}

// NewMovementHandler construye el handler.
func NewMovementHandler(st *store.Store, r *view.Renderer) *MovementHandler {
	return &MovementHandler{store: st, renderer: r}
}

// List godoc
// @Summary      Historia completa, más reciente primero
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.MovementsViewResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.renderer.Movements(h.store.Snapshot()))
}

// Record godoc
// @Summary      Registrar movimiento (compra, venta o ajuste)
// @Description  Compra fuerza cantidad positiva, venta negativa, ajuste tal
//               cual. Sin precio explícito se usa el precio del artículo en
//               ventas y su costo en el resto. Una venta nunca deja el stock
//               por debajo de cero.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "item_id, type, qty, unit (opcional), note"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.store.RecordMovement(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// Delete godoc
// @Summary      Eliminar movimiento (el stock NO se recalcula)
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Clear godoc
// @Summary      Vaciar la historia completa (los stocks quedan como están)
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Router       /api/movements [delete]
func (h *MovementHandler) Clear(c *fiber.Ctx) error {
	if err := h.store.ClearMovements(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:     m.ID,
		TS:     m.TS,
		Type:   m.Type,
		ItemID: m.ItemID,
		Qty:    m.Qty,
		Unit:   m.Unit,
		Note:   m.Note,
	}
}
