// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"foliocraft/internal/database"
	"foliocraft/internal/middleware"
	"foliocraft/internal/models"
	"foliocraft/internal/renderer"
	"foliocraft/internal/sectiontypes"
	"foliocraft/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "foliocraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "foliocraft")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv bundles the stores and handler groups wired against the test DB.
// The page cache is nil so tests never require Valkey.
type testEnv struct {
	db         *sql.DB
	registry   *sectiontypes.Registry
	portfolios *store.PortfolioStore
	sections   *store.SectionStore
	themes     *store.ThemeStore
	router     chi.Router
}

// newTestEnv builds a router with the full API surface plus the public
// portfolio page, matching the production wiring minus the cache.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testDB(t)

	registry := sectiontypes.New()
	portfolios := store.NewPortfolioStore(db)
	sections := store.NewSectionStore(db, registry)
	themes := store.NewThemeStore(db)

	sectionHandlers := NewSections(sections, portfolios, nil)
	portfolioHandlers := NewPortfolios(portfolios, nil)
	catalogHandlers := NewCatalog(registry, themes)
	publicHandlers := NewPublic(portfolios, sections, themes, renderer.New(), nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/portfolios", portfolioHandlers.List)
		r.Post("/portfolios", portfolioHandlers.Create)
		r.Get("/portfolios/{portfolioID}", portfolioHandlers.Get)
		r.Put("/portfolios/{portfolioID}/publish", portfolioHandlers.Publish)
		r.Put("/portfolios/{portfolioID}/theme", portfolioHandlers.SetTheme)
		r.Get("/portfolios/{portfolioID}/sections", sectionHandlers.List)
		r.Post("/portfolios/{portfolioID}/sections", sectionHandlers.Add)
		r.Put("/portfolios/{portfolioID}/sections/reorder", sectionHandlers.Reorder)
		r.Patch("/portfolios/{portfolioID}/sections/{sectionID}", sectionHandlers.Update)
		r.Delete("/portfolios/{portfolioID}/sections/{sectionID}", sectionHandlers.Delete)
		r.Post("/portfolios/{portfolioID}/sections/{sectionID}/duplicate", sectionHandlers.Duplicate)
		r.Get("/section-types", catalogHandlers.SectionTypes)
		r.Get("/section-types/categories", catalogHandlers.SectionTypeCategories)
		r.Get("/themes", catalogHandlers.Themes)
		r.Get("/themes/{themeID}", catalogHandlers.Theme)
	})
	r.Get("/p/{slug}", publicHandlers.Portfolio)

	return &testEnv{
		db:         db,
		registry:   registry,
		portfolios: portfolios,
		sections:   sections,
		themes:     themes,
		router:     r,
	}
}

// createUser inserts a throwaway user; deleting it cascades to portfolios
// and sections.
func (e *testEnv) createUser(t *testing.T) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	email := "handler-" + uuid.NewString()[:8] + "@foliocraft.local"
	err := e.db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, 'x', 'Handler Test')
		RETURNING id
	`, email).Scan(&id)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { e.db.Exec(`DELETE FROM users WHERE id = $1`, id) })
	return id
}

// createPortfolio makes a portfolio owned by the given user.
func (e *testEnv) createPortfolio(t *testing.T, owner uuid.UUID) *models.Portfolio {
	t.Helper()
	p, err := e.portfolios.Create(owner, "Handler Test "+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("create portfolio: %v", err)
	}
	return p
}

// addSection appends a section of the named type through the store.
func (e *testEnv) addSection(t *testing.T, owner, portfolioID uuid.UUID, typeName string) *store.SectionWithType {
	t.Helper()
	st := e.registry.FindByName(typeName)
	if st == nil {
		t.Fatalf("unknown section type %q", typeName)
	}
	sec, err := e.sections.Add(owner, store.AddSectionInput{
		PortfolioID:   portfolioID,
		SectionTypeID: st.ID,
	})
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	return sec
}

// asUser attaches the identity header the auth gateway would set.
func asUser(req *http.Request, id uuid.UUID) *http.Request {
	req.Header.Set("X-User-ID", id.String())
	return req
}
