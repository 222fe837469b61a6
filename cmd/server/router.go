package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/proyectozoo/zoo-api/internal/api"
	apiMiddleware "github.com/proyectozoo/zoo-api/internal/api/middleware"
	"github.com/proyectozoo/zoo-api/internal/api/shared"
)

// requestTimeout bounds every request, uploads included.
const requestTimeout = 60 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(apiMiddleware.Locale(app.translator))

	api.RegisterRoutes(r, app.handlers(), app.guard())

	r.Get("/health", app.health)

	if app.metrics != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	return r
}

// health reports whether the database is reachable.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "OK"})
}
