// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"foliocraft/internal/cache"
	"foliocraft/internal/middleware"
	"foliocraft/internal/store"
)

// Portfolios groups the portfolio management endpoints.
type Portfolios struct {
	portfolios *store.PortfolioStore
	pageCache  *cache.PageCache
}

// NewPortfolios creates a new Portfolios handler group. pageCache may be
// nil when Valkey is not configured.
func NewPortfolios(portfolios *store.PortfolioStore, pageCache *cache.PageCache) *Portfolios {
	return &Portfolios{portfolios: portfolios, pageCache: pageCache}
}

// List returns the caller's portfolios, newest first.
func (h *Portfolios) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolios.ListByUser(middleware.UserIDFromCtx(r.Context()))
	if err != nil {
		writeError(w, err, "list portfolios")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// createPortfolioRequest is the JSON body for creating a portfolio.
type createPortfolioRequest struct {
	Title string `json:"title"`
}

// Create makes a new, unpublished portfolio for the caller.
func (h *Portfolios) Create(w http.ResponseWriter, r *http.Request) {
	var req createPortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if msg := validatePortfolioTitle(req.Title); msg != "" {
		badRequest(w, msg)
		return
	}

	p, err := h.portfolios.Create(middleware.UserIDFromCtx(r.Context()), req.Title)
	if err != nil {
		writeError(w, err, "create portfolio")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Get returns a single portfolio. Owners see their own portfolios
// regardless of publication state.
func (h *Portfolios) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}

	p, err := h.portfolios.FindByID(id)
	if err != nil {
		writeError(w, err, "get portfolio")
		return
	}
	if p == nil || p.UserID != middleware.UserIDFromCtx(r.Context()) {
		writeError(w, store.ErrNotFound, "get portfolio")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// publishRequest is the JSON body for toggling publication.
type publishRequest struct {
	Published bool `json:"published"`
}

// Publish toggles the portfolio's public visibility.
func (h *Portfolios) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if err := h.portfolios.Publish(middleware.UserIDFromCtx(r.Context()), id, req.Published); err != nil {
		writeError(w, err, "publish portfolio")
		return
	}

	h.invalidate(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// setThemeRequest is the JSON body for theme assignment. A null theme_id
// clears the assignment, falling back to default tokens.
type setThemeRequest struct {
	ThemeID *uuid.UUID `json:"theme_id"`
}

// SetTheme assigns or clears the portfolio's theme.
func (h *Portfolios) SetTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}

	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if err := h.portfolios.SetTheme(middleware.UserIDFromCtx(r.Context()), id, req.ThemeID); err != nil {
		writeError(w, err, "set portfolio theme")
		return
	}

	h.invalidate(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// invalidate drops the portfolio's cached public page.
func (h *Portfolios) invalidate(r *http.Request, id uuid.UUID) {
	if h.pageCache == nil {
		return
	}
	if p, err := h.portfolios.FindByID(id); err == nil && p != nil {
		h.pageCache.InvalidatePortfolio(r.Context(), p.Slug)
	}
}
