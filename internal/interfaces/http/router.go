package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/store"
	"github.com/jhoicas/stockpilot-api/internal/application/view"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store     *store.Store
	Renderer  *view.Renderer
	Snapshots repository.SnapshotRepository
	Reports   InventoryPDFGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Estado completo (snapshot JSON)
	stateHandler := NewStateHandler(deps.Store, deps.Snapshots)
	api.Get("/state", stateHandler.Get)
	api.Post("/state", stateHandler.Replace)
	api.Delete("/state", stateHandler.Reset)
	api.Post("/demo", stateHandler.SeedDemo)

	// Artículos
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.Store, deps.Renderer)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Movimientos
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Store, deps.Renderer)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Record)
	movements.Delete("/", movementHandler.Clear)
	movements.Delete("/:id", movementHandler.Delete)

	// CSV (exportación e importación con fusión)
	csvHandler := NewCSVHandler(deps.Store)
	api.Get("/export.csv", csvHandler.Export)
	api.Post("/import.csv", csvHandler.Import)

	// Generador de códigos QR
	qrHandler := NewQRHandler()
	api.Post("/qr/render", qrHandler.Render)

	// Informes
	reportHandler := NewReportHandler(deps.Store, deps.Renderer, deps.Reports)
	api.Get("/reports/inventory.pdf", reportHandler.Inventory)
}
