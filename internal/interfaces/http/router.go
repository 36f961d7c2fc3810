package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsuarezb/toolstock-api/internal/application/auth"
	"github.com/wsuarezb/toolstock-api/internal/application/documents"
	"github.com/wsuarezb/toolstock-api/internal/application/inventory"
	"github.com/wsuarezb/toolstock-api/internal/application/reports"
	"github.com/wsuarezb/toolstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC   *inventory.UseCase
	StockQueryUC  *inventory.QueryUseCase
	ResponsibleUC *usecase.ResponsibleUseCase
	ClientUC      *usecase.ClientUseCase
	WellUC        *usecase.WellUseCase
	ToolTypeUC    *usecase.ToolTypeUseCase
	EquivalenceUC *usecase.EquivalenceUseCase
	ReportsUC     *reports.UseCase
	DocumentsUC   *documents.UseCase
	AuthUC        *auth.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Las operaciones de inventario y las
// consultas son de operación diaria y quedan abiertas; la administración del
// catálogo y las operaciones destructivas exigen la sesión administrativa.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Group("/auth").Post("/login", authHandler.Login)

	// Operaciones de inventario
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/importations", inventoryHandler.AddImportation)
	inv.Post("/dispatches", inventoryHandler.Dispatch)
	inv.Post("/returns", inventoryHandler.Return)
	inv.Post("/field-status", inventoryHandler.FieldStatus)

	// Stock derivado y registro de herramientas
	stockHandler := NewStockHandler(deps.StockQueryUC)
	api.Get("/stock/:location", stockHandler.StockInLocation)
	api.Get("/tools", stockHandler.ListTools)
	api.Get("/tools/:id", stockHandler.ToolDetail)

	// Reportes
	rep := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	rep.Get("/history", reportHandler.History)
	rep.Get("/search", reportHandler.Search)
	rep.Get("/stock", reportHandler.FullStockReport)
	rep.Get("/stock/warehouse", reportHandler.WarehouseStockReport)
	rep.Get("/stock/export", reportHandler.ExportStockReport)

	// Documentos
	docs := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentsUC)
	docs.Post("/delivery-note", documentHandler.DeliveryNote)
	docs.Post("/backload-note", documentHandler.BackloadNote)

	// Catálogos: lecturas abiertas, mutaciones protegidas
	catalogHandler := NewCatalogHandler(deps.ResponsibleUC, deps.ClientUC, deps.WellUC, deps.ToolTypeUC, deps.EquivalenceUC)
	cat := api.Group("/catalog")
	cat.Get("/responsibles", catalogHandler.ListResponsibles)
	cat.Get("/clients", catalogHandler.ListClients)
	cat.Get("/wells", catalogHandler.ListWells)
	cat.Get("/wells/map", catalogHandler.WellMap)
	cat.Get("/tool-types", catalogHandler.ListToolTypes)
	cat.Get("/equivalences", catalogHandler.ListEquivalences)
	cat.Get("/equivalences/:supplier_pn", catalogHandler.GetEquivalence)

	protectedCat := cat.Group("/", AuthMiddleware(deps.JWTSecret))
	protectedCat.Post("/responsibles", catalogHandler.AddResponsible)
	protectedCat.Put("/responsibles", catalogHandler.RenameResponsible)
	protectedCat.Delete("/responsibles/:name", catalogHandler.DeactivateResponsible)
	protectedCat.Post("/clients", catalogHandler.AddClient)
	protectedCat.Put("/clients", catalogHandler.RenameClient)
	protectedCat.Delete("/clients/:name", catalogHandler.DeactivateClient)
	protectedCat.Post("/wells", catalogHandler.AddWell)
	protectedCat.Put("/wells", catalogHandler.UpdateWell)
	protectedCat.Delete("/wells/:name", catalogHandler.DeactivateWell)
	protectedCat.Post("/tool-types", catalogHandler.UpsertToolType)
	protectedCat.Delete("/tool-types/:name", catalogHandler.DeactivateToolType)
	protectedCat.Post("/equivalences", catalogHandler.UpsertEquivalence)
	protectedCat.Delete("/equivalences/:supplier_pn", catalogHandler.DeleteEquivalence)

	// Administración (protegido)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret))
	adminHandler := NewAdminHandler(deps.InventoryUC)
	admin.Delete("/tools/:id", adminHandler.DeleteTool)
	admin.Post("/tools/:id/deactivate", adminHandler.DeactivateTool)
	admin.Post("/reset", adminHandler.ResetAllData)
}
