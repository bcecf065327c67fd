// Package router sets up all HTTP routes and middleware chains for the
// FolioCraft server. It organizes routes into the authenticated editing
// API and the public portfolio pages.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"foliocraft/internal/handlers"
	"foliocraft/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(portfolios *handlers.Portfolios, sections *handlers.Sections, catalog *handlers.Catalog, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Editing API — identity required, rate limited per client IP.
	apiLimiter := middleware.NewRateLimiter(120, time.Minute)
	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)
		r.Use(middleware.RequireUser)

		// Portfolios
		r.Route("/portfolios", func(r chi.Router) {
			r.Get("/", portfolios.List)
			r.Post("/", portfolios.Create)
			r.Get("/{portfolioID}", portfolios.Get)
			r.Put("/{portfolioID}/publish", portfolios.Publish)
			r.Put("/{portfolioID}/theme", portfolios.SetTheme)

			// Sections — the ordered composition of a portfolio.
			r.Route("/{portfolioID}/sections", func(r chi.Router) {
				r.Get("/", sections.List)
				r.Post("/", sections.Add)
				r.Put("/reorder", sections.Reorder)
				r.Patch("/{sectionID}", sections.Update)
				r.Delete("/{sectionID}", sections.Delete)
				r.Post("/{sectionID}/duplicate", sections.Duplicate)
			})
		})

		// Read-only catalogs.
		r.Get("/section-types", catalog.SectionTypes)
		r.Get("/section-types/categories", catalog.SectionTypeCategories)
		r.Get("/themes", catalog.Themes)
		r.Get("/themes/{themeID}", catalog.Theme)
	})

	// Public portfolio pages.
	r.Get("/p/{slug}", public.Portfolio)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
