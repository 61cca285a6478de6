package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/store"
	"github.com/jhoicas/stockpilot-api/internal/domain"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// StateHandler expone el snapshot crudo que consume el cliente web, más
// el reset y la carga de datos demo.
type StateHandler struct {
	store *store.Store
	repo  repository.SnapshotRepository
}

// NewStateHandler construye el handler.
func NewStateHandler(st *store.Store, repo repository.SnapshotRepository) *StateHandler {
	return &StateHandler{store: st, repo: repo}
}

// Get godoc
// @Summary      Snapshot persistido completo
// @Description  Sin datos previos responde el estado vacío por defecto; con
//               datos ilegibles responde 500 con ese mismo cuerpo por defecto.
// @Tags         state
// @Produce      json
// @Success      200  {object}  entity.Snapshot
// @Failure      500  {object}  entity.Snapshot
// @Router       /api/state [get]
func (h *StateHandler) Get(c *fiber.Ctx) error {
	// Se lee del medio persistente en cada petición: la verdad es el
	// último snapshot escrito.
	snap, err := h.repo.Load(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrCorruptSnapshot) {
			return c.Status(fiber.StatusInternalServerError).JSON(snap)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(entity.NewSnapshot())
	}
	return c.JSON(snap)
}

// Replace godoc
// @Summary      Sobrescribir el snapshot (last-writer-wins)
// @Tags         state
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Failure      400  {object}  dto.OKResponse
// @Router       /api/state [post]
func (h *StateHandler) Replace(c *fiber.Ctx) error {
	var snap entity.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.OKResponse{OK: false})
	}
	if err := h.store.ReplaceState(c.Context(), &snap); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.OKResponse{OK: false})
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Reset godoc
// @Summary      Vaciar artículos e historia
// @Tags         state
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Router       /api/state [delete]
func (h *StateHandler) Reset(c *fiber.Ctx) error {
	if err := h.store.Reset(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// SeedDemo godoc
// @Summary      Cargar datos de demostración (solo sistema vacío)
// @Tags         state
// @Produce      json
// @Success      201  {object}  dto.OKResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/demo [post]
func (h *StateHandler) SeedDemo(c *fiber.Ctx) error {
	if err := h.store.SeedDemo(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKResponse{OK: true})
}
