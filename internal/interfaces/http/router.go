package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AccountUC    *usecase.AccountUseCase
	CatalogUC    *usecase.CatalogUseCase
	ItemUC       *usecase.ItemUseCase
	PCUC         *usecase.PCUseCase
	Ledger       *inventory.StockLedger
	Availability *inventory.AvailabilityCalculator
	Disposals    *inventory.DisposalEngine
	Builds       *inventory.PCBuildManager
	Reports      *inventory.ReportService
	JWTSecret    string
}

var (
	readRoles  = []string{entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleViewer, entity.RoleGuest}
	writeRoles = []string{entity.RoleSuperAdmin, entity.RoleAdmin}
)

// Router registra las rutas de la API.
// Lecturas: cualquier rol autenticado. Escrituras: SuperAdmin y Admin. Cuentas: sólo SuperAdmin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token); se registran después de las públicas.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	read := RequireRole(readRoles...)
	write := RequireRole(writeRoles...)

	// Cuentas (SuperAdmin)
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts := protected.Group("/accounts", RequireRole(entity.RoleSuperAdmin))
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)
	accounts.Patch("/:id/activate", accountHandler.Activate)
	accounts.Patch("/:id/deactivate", accountHandler.Deactivate)

	// Catálogo
	catalog := NewCatalogHandler(deps.CatalogUC)
	brands := protected.Group("/brands")
	brands.Get("/", read, catalog.ListBrands)
	brands.Get("/:id", read, catalog.GetBrand)
	brands.Post("/", write, catalog.CreateBrand)
	brands.Put("/:id", write, catalog.UpdateBrand)
	brands.Delete("/:id", write, catalog.DeleteBrand)

	categories := protected.Group("/categories")
	categories.Get("/", read, catalog.ListCategories)
	categories.Get("/:id", read, catalog.GetCategory)
	categories.Post("/", write, catalog.CreateCategory)
	categories.Put("/:id", write, catalog.UpdateCategory)
	categories.Delete("/:id", write, catalog.DeleteCategory)

	locations := protected.Group("/locations")
	locations.Get("/", read, catalog.ListLocations)
	locations.Get("/:id", read, catalog.GetLocation)
	locations.Post("/", write, catalog.CreateLocation)
	locations.Put("/:id", write, catalog.UpdateLocation)
	locations.Delete("/:id", write, catalog.DeleteLocation)

	rooms := protected.Group("/rooms")
	rooms.Get("/", read, catalog.ListRooms)
	rooms.Get("/:id", read, catalog.GetRoom)
	rooms.Post("/", write, catalog.CreateRoom)
	rooms.Put("/:id", write, catalog.UpdateRoom)
	rooms.Delete("/:id", write, catalog.DeleteRoom)

	itemHandler := NewItemHandler(deps.ItemUC)
	items := protected.Group("/items")
	items.Get("/", read, itemHandler.List)
	items.Get("/:id", read, itemHandler.GetByID)
	items.Post("/", write, itemHandler.Create)
	items.Put("/:id", write, itemHandler.Update)
	items.Delete("/:id", write, itemHandler.Delete)

	// Libro de stock (las rutas literales van antes de /:id)
	stockHandler := NewStockHandler(deps.Ledger, deps.Availability, deps.Reports)
	stocks := protected.Group("/stocks")
	stocks.Get("/", read, stockHandler.List)
	stocks.Get("/export", write, stockHandler.Export)
	stocks.Get("/available/:itemId", read, stockHandler.Available)
	stocks.Get("/item/:itemId", read, stockHandler.ListByItem)
	stocks.Get("/:id", read, stockHandler.GetByID)
	stocks.Post("/", write, stockHandler.Create)
	stocks.Put("/:id", write, stockHandler.Update)
	stocks.Delete("/:id", write, stockHandler.Delete)

	// Bajas
	disposalHandler := NewDisposalHandler(deps.Disposals, deps.Reports)
	disposals := protected.Group("/disposals")
	disposals.Get("/", read, disposalHandler.List)
	disposals.Post("/validate", read, disposalHandler.Validate)
	disposals.Get("/item/:itemId", read, disposalHandler.ListByItem)
	disposals.Get("/with-stock/:id", read, disposalHandler.WithStock)
	disposals.Get("/stock-with-disposal/:itemId", read, disposalHandler.StockWithDisposal)
	disposals.Get("/:id/pdf", read, disposalHandler.PDF)
	disposals.Get("/:id", read, disposalHandler.GetByID)
	disposals.Post("/", write, disposalHandler.Create)
	disposals.Put("/:id", write, disposalHandler.Update)
	disposals.Delete("/:id", write, disposalHandler.Delete)

	// PCs y componentes
	pcHandler := NewPCHandler(deps.PCUC)
	pcs := protected.Group("/pcs")
	pcs.Get("/", read, pcHandler.List)
	pcs.Get("/specification-fields/:categoryId", read, pcHandler.SpecificationFields)
	pcs.Get("/:id", read, pcHandler.GetByID)
	pcs.Post("/", write, pcHandler.Create)
	pcs.Put("/:id", write, pcHandler.Update)
	pcs.Delete("/:id", write, pcHandler.Delete)

	componentHandler := NewPCComponentHandler(deps.Builds)
	components := protected.Group("/pc-components")
	components.Get("/", read, componentHandler.List)
	components.Get("/pc/:pcId", read, componentHandler.ListByPC)
	components.Get("/item/:itemId", read, componentHandler.ListByItem)
	components.Get("/:id", read, componentHandler.GetByID)
	components.Post("/", write, componentHandler.Create)
	components.Post("/:id/return-to-stock", write, componentHandler.ReturnToStock)
	components.Put("/:id", write, componentHandler.Update)
	components.Delete("/:id", write, componentHandler.Delete)
}
