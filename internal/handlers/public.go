// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"foliocraft/internal/cache"
	"foliocraft/internal/renderer"
	"foliocraft/internal/store"
)

// Public serves the rendered portfolio pages. It checks the Valkey page
// cache before composing the page, and stores rendered results on miss.
type Public struct {
	portfolios *store.PortfolioStore
	sections   *store.SectionStore
	themes     *store.ThemeStore
	renderer   *renderer.Renderer
	pageCache  *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil when
// Valkey is not configured; every request then renders fresh.
func NewPublic(portfolios *store.PortfolioStore, sections *store.SectionStore, themes *store.ThemeStore, rnd *renderer.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{
		portfolios: portfolios,
		sections:   sections,
		themes:     themes,
		renderer:   rnd,
		pageCache:  pageCache,
	}
}

// Portfolio renders a published portfolio by its slug: sections in order,
// hidden ones skipped, theme tokens resolved, unknown section types logged
// and dropped rather than failing the page.
func (p *Public) Portfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, slugParam); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	portfolio, err := p.portfolios.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find portfolio by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if portfolio == nil || !portfolio.IsPublished {
		// Unpublished portfolios are indistinguishable from missing ones.
		http.NotFound(w, r)
		return
	}

	sections, err := p.sections.List(portfolio.ID)
	if err != nil {
		slog.Error("list sections failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	th, err := p.themes.ForPortfolio(portfolio)
	if err != nil {
		// A broken theme reference falls back to default tokens.
		slog.Warn("theme lookup failed, using defaults", "error", err, "slug", slugParam)
		th = nil
	}

	pageSections := make([]renderer.PageSection, 0, len(sections))
	for _, sec := range sections {
		pageSections = append(pageSections, renderer.PageSection{
			Section: sec.PortfolioSection,
			Type:    sec.Type,
		})
	}

	rendered, err := p.renderer.RenderPortfolio(portfolio, pageSections, th)
	if err != nil {
		slog.Error("render portfolio failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, slugParam, rendered)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}
