package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dialogen/adapters/jsonl"
	"dialogen/app"
	"dialogen/internal/config"
)

// App represents the HTTP API application
type App struct {
	router     *chi.Mux
	cfg        *config.Config
	generation *app.GenerationService
	mining     *app.MiningService
	writer     *jsonl.Writer
}

// NewApp creates the API application and wires its routes
func NewApp(cfg *config.Config, generation *app.GenerationService, mining *app.MiningService, writer *jsonl.Writer) *App {
	a := &App{
		router:     chi.NewRouter(),
		cfg:        cfg,
		generation: generation,
		mining:     mining,
		writer:     writer,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/api/health", a.handleHealth)
	a.router.Post("/api/generate", a.handleGenerate)
	a.router.Post("/api/mine", a.handleMine)
}

// Router exposes the configured router for serving
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the configured port
func (a *App) Start() error {
	return http.ListenAndServe(":"+a.cfg.Server.Port, a.router)
}
