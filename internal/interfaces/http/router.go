package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sitta-api/internal/application/auth"
	appstock "github.com/jhoicas/sitta-api/internal/application/stock"
	apptracking "github.com/jhoicas/sitta-api/internal/application/tracking"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	StockVM    *appstock.ViewModel
	TrackingVM *apptracking.ViewModel
	Exporter   StockExporter
	Slips      SlipGenerator

	Service       string
	CatalogSource string
	Store         CatalogSnapshot
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Store != nil {
		app.Get("/health", NewHealthHandler(deps.Service, deps.CatalogSource, deps.Store).Health)
	}

	api := app.Group("/api", SessionMiddleware(deps.AuthUC))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", RequireLogin())

	// Stok bahan ajar. Las rutas fijas van antes de /:code.
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockVM, deps.Exporter)
	stock.Get("/", stockHandler.View)
	stock.Put("/criteria", stockHandler.SetCriteria)
	stock.Get("/options", stockHandler.Options)
	stock.Get("/summary", stockHandler.Summary)
	stock.Get("/export.xlsx", stockHandler.Export)
	stock.Get("/alerts", stockHandler.Alerts)
	stock.Delete("/alerts/:channel", stockHandler.Dismiss)
	stock.Post("/", stockHandler.Create)
	stock.Get("/:code", stockHandler.Get)
	stock.Put("/:code", stockHandler.Update)
	stock.Delete("/:code", stockHandler.Delete)

	// Tracking de Delivery Orders
	tracking := protected.Group("/tracking")
	trackingHandler := NewTrackingHandler(deps.TrackingVM, deps.Slips)
	tracking.Get("/", trackingHandler.List)
	tracking.Post("/", trackingHandler.Create)
	tracking.Get("/new", trackingHandler.PrepareNew)
	tracking.Get("/packages/:code", trackingHandler.SelectPackage)
	tracking.Post("/search", trackingHandler.Search)
	tracking.Delete("/search", trackingHandler.CloseResults)
	tracking.Get("/alerts", trackingHandler.Alerts)
	tracking.Delete("/alerts/:channel", trackingHandler.Dismiss)
	tracking.Get("/:orderNumber/slip.pdf", trackingHandler.Slip)
	tracking.Get("/:orderNumber", trackingHandler.View)
}
