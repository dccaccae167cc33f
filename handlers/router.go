package handlers

import (
	"html/template"
	"log/slog"

	"wagecalc/config"
	"wagecalc/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg *config.Config, templates map[string]*template.Template, logger *slog.Logger) *chi.Mux {
	sessions := middleware.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SessionCookieSecure, logger)
	wageHandler := NewWageHandler(cfg, templates, sessions, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", Health)
	router.Get("/api/rates", wageHandler.Rates)

	// Routes that work on the caller's wage session
	router.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)

		r.Get("/", wageHandler.CalculatorPage)
		r.Post("/wage", wageHandler.UpdateWage)
		r.Post("/wage/reset", wageHandler.ResetWage)
		r.Get("/api/wage", wageHandler.WageJSON)
	})

	return router
}
