package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/store"
	"github.com/jhoicas/stockpilot-api/internal/application/view"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
)

// ItemHandler maneja las peticiones HTTP de artículos.
type ItemHandler struct {
	store    *store.Store
	renderer *view.Renderer
}

// NewItemHandler construye el handler.
func NewItemHandler(st *store.Store, r *view.Renderer) *ItemHandler {
	return &ItemHandler{store: st, renderer: r}
}

// List godoc
// @Summary      Tabla de artículos filtrada y ordenada, más KPIs
// @Tags         items
// @Produce      json
// @Param        search  query  string  false  "Subcadena sobre sku/nombre/categoría/proveedor"
// @Param        stock   query  string  false  "Filtro de stock: low | zero"
// @Success      200  {object}  dto.ItemsViewResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	return c.JSON(h.renderer.Items(snap, c.Query("search"), c.Query("stock")))
}

// Create godoc
// @Summary      Crear artículo (stock inicial > 0 genera un ajuste semilla)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.store.CreateItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
}

// Update godoc
// @Summary      Edición inline: reemplaza todos los campos, incluido stock
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos nuevos"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.store.UpdateItem(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toItemResponse(item))
}

// Delete godoc
// @Summary      Eliminar artículo (la historia se conserva con marcador)
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:       it.ID,
		SKU:      it.SKU,
		Name:     it.Name,
		Category: it.Category,
		Supplier: it.Supplier,
		Cost:     it.Cost,
		Price:    it.Price,
		Stock:    it.Stock,
	}
}
