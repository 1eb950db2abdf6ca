package main

import (
	"net/http"

	"github.com/diewo77/quotemaster/internal/handlers"
	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/metrics"
	"github.com/diewo77/quotemaster/internal/store"
	"go.uber.org/zap"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux     *http.ServeMux
	handler http.Handler
	store   *store.Store
}

// NewApp creates a new application with all routes configured. The store
// must already be initialized.
func NewApp(s *store.Store, log *zap.Logger, m *metrics.Metrics) (*App, error) {
	reg, err := metrics.NewRegistry(m)
	if err != nil {
		return nil, err
	}

	app := &App{
		mux:   http.NewServeMux(),
		store: s,
	}
	app.setupRoutes()
	app.mux.Handle("GET /metrics", metrics.Handler(reg))

	app.handler = httpx.Chain(app.mux,
		httpx.RequestID(log),
		httpx.AccessLog,
		httpx.Recover,
		httpx.Instrument(m),
	)
	return app, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	a.mux.HandleFunc("GET /healthz", a.healthz)

	// Clients
	ch := handlers.NewClientHandler(a.store)
	a.mux.HandleFunc("GET /clients", ch.List)
	a.mux.HandleFunc("POST /clients", ch.Create)
	a.mux.HandleFunc("GET /clients/{id}", ch.View)
	a.mux.HandleFunc("PUT /clients/{id}", ch.Update)
	a.mux.HandleFunc("DELETE /clients/{id}", ch.Delete)

	// Business settings
	sh := handlers.NewSettingsHandler(a.store)
	a.mux.HandleFunc("GET /settings", sh.Edit)
	a.mux.HandleFunc("PUT /settings", sh.Update)

	// Estimates
	eh := handlers.NewEstimateHandler(a.store)
	a.mux.HandleFunc("GET /estimates", eh.List)
	a.mux.HandleFunc("POST /estimates", eh.Create)
	a.mux.HandleFunc("GET /estimates/{id}", eh.View)
	a.mux.HandleFunc("DELETE /estimates/{id}", eh.Delete)

	// Invoices
	ih := handlers.NewInvoiceHandler(a.store)
	a.mux.HandleFunc("GET /invoices", ih.List)
	a.mux.HandleFunc("POST /invoices", ih.Create)
	a.mux.HandleFunc("GET /invoices/{id}", ih.View)
	a.mux.HandleFunc("DELETE /invoices/{id}", ih.Delete)

	// Products
	ph := handlers.NewProductHandler(a.store)
	a.mux.HandleFunc("GET /products", ph.List)
	a.mux.HandleFunc("POST /products", ph.Create)
	a.mux.HandleFunc("GET /products/{id}", ph.View)

	// Revenue and dashboard
	rh := handlers.NewRevenueHandler(a.store)
	a.mux.HandleFunc("GET /revenue", rh.Monthly)
	a.mux.HandleFunc("POST /revenue", rh.Create)
	a.mux.HandleFunc("GET /dashboard", rh.Dashboard)
}

func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
