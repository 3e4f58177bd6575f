package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stocklens/app"
	"stocklens/internal"
	"stocklens/internal/config"
	"stocklens/ports"
)

// App represents the dashboard API application
type App struct {
	router    *chi.Mux
	analytics *app.AnalyticsService
	reports   *app.ReportService
	catalog   ports.ProductCatalogPort
	engine    config.EngineConfig
	logger    *internal.Logger
}

// NewApp creates the API application and wires its routes
func NewApp(analytics *app.AnalyticsService, reports *app.ReportService, catalog ports.ProductCatalogPort, engine config.EngineConfig, logger *internal.Logger) *App {
	a := &App{
		router:    chi.NewRouter(),
		analytics: analytics,
		reports:   reports,
		catalog:   catalog,
		engine:    engine,
		logger:    logger,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/products", a.handleProducts)
		r.Route("/products/{code}", func(r chi.Router) {
			r.Get("/locations", a.handleLocations)
			r.Get("/history", a.handleHistory)
			r.Get("/variability", a.handleVariability)
			r.Get("/reconciliation", a.handleReconciliation)
			r.Post("/zoom", a.handleZoom)
			r.Get("/export", a.handleExport)
			r.Get("/report", a.handleReport)
		})
	})
}

// Router returns the root handler
func (a *App) Router() http.Handler {
	return a.router
}
