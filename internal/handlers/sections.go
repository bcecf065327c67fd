// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"foliocraft/internal/cache"
	"foliocraft/internal/middleware"
	"foliocraft/internal/models"
	"foliocraft/internal/store"
)

// Sections groups the section editing endpoints. Every mutation goes
// through the SectionStore, which enforces ownership and keeps sort
// orders contiguous; on success the portfolio's cached public page is
// invalidated.
type Sections struct {
	sections   *store.SectionStore
	portfolios *store.PortfolioStore
	pageCache  *cache.PageCache
}

// NewSections creates a new Sections handler group. pageCache may be nil
// when Valkey is not configured.
func NewSections(sections *store.SectionStore, portfolios *store.PortfolioStore, pageCache *cache.PageCache) *Sections {
	return &Sections{sections: sections, portfolios: portfolios, pageCache: pageCache}
}

// invalidate drops the portfolio's cached page after a mutation.
func (h *Sections) invalidate(ctx context.Context, portfolioID uuid.UUID) {
	if h.pageCache == nil {
		return
	}
	p, err := h.portfolios.FindByID(portfolioID)
	if err != nil || p == nil {
		slog.Warn("cache invalidation lookup failed", "portfolio", portfolioID, "error", err)
		return
	}
	h.pageCache.InvalidatePortfolio(ctx, p.Slug)
}

// portfolioIDParam parses the {portfolioID} URL parameter.
func portfolioIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "portfolioID"))
	return id, err == nil
}

// sectionIDParam parses the {sectionID} URL parameter.
func sectionIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sectionID"))
	return id, err == nil
}

// List returns the portfolio's sections ordered by position, each with its
// resolved section type metadata.
func (h *Sections) List(w http.ResponseWriter, r *http.Request) {
	portfolioID, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}

	sections, err := h.sections.List(portfolioID)
	if err != nil {
		writeError(w, err, "list sections")
		return
	}
	if sections == nil {
		sections = []store.SectionWithType{}
	}
	writeJSON(w, http.StatusOK, sections)
}

// addSectionRequest is the JSON body for adding a section.
type addSectionRequest struct {
	SectionTypeID uuid.UUID          `json:"section_type_id"`
	Content       models.JSONMap     `json:"content"`
	Layout        *string            `json:"layout"`
	Styles        models.StyleMap    `json:"styles"`
	Animations    *models.Animations `json:"animations"`
	Order         *int               `json:"order"`
}

// Add creates a new section. Without an explicit order it is appended at
// the end; without content the type's default content is used.
func (h *Sections) Add(w http.ResponseWriter, r *http.Request) {
	portfolioID, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}

	var req addSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.SectionTypeID == uuid.Nil {
		badRequest(w, "section_type_id is required")
		return
	}
	if msg := validateContent(req.Content); msg != "" {
		badRequest(w, msg)
		return
	}
	if msg := validateStyles(req.Styles); msg != "" {
		badRequest(w, msg)
		return
	}
	if msg := validateLayout(req.Layout); msg != "" {
		badRequest(w, msg)
		return
	}

	sec, err := h.sections.Add(middleware.UserIDFromCtx(r.Context()), store.AddSectionInput{
		PortfolioID:   portfolioID,
		SectionTypeID: req.SectionTypeID,
		Content:       req.Content,
		Layout:        req.Layout,
		Styles:        req.Styles,
		Animations:    req.Animations,
		SortOrder:     req.Order,
	})
	if err != nil {
		writeError(w, err, "add section")
		return
	}

	h.invalidate(r.Context(), portfolioID)
	writeJSON(w, http.StatusCreated, sec)
}

// updateSectionRequest is the JSON body for a partial section update.
// Absent fields leave the stored values untouched.
type updateSectionRequest struct {
	Content    models.JSONMap     `json:"content"`
	Layout     *string            `json:"layout"`
	Styles     models.StyleMap    `json:"styles"`
	Animations *models.Animations `json:"animations"`
	IsVisible  *bool              `json:"is_visible"`
}

// Update applies a partial update to a section.
func (h *Sections) Update(w http.ResponseWriter, r *http.Request) {
	portfolioID, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}
	sectionID, ok := sectionIDParam(r)
	if !ok {
		badRequest(w, "invalid section id")
		return
	}

	var req updateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if msg := validateContent(req.Content); msg != "" {
		badRequest(w, msg)
		return
	}
	if msg := validateStyles(req.Styles); msg != "" {
		badRequest(w, msg)
		return
	}
	if msg := validateLayout(req.Layout); msg != "" {
		badRequest(w, msg)
		return
	}

	sec, err := h.sections.Update(middleware.UserIDFromCtx(r.Context()), store.UpdateSectionInput{
		ID:         sectionID,
		Content:    req.Content,
		Layout:     req.Layout,
		Styles:     req.Styles,
		Animations: req.Animations,
		IsVisible:  req.IsVisible,
	})
	if err != nil {
		writeError(w, err, "update section")
		return
	}

	h.invalidate(r.Context(), portfolioID)
	writeJSON(w, http.StatusOK, sec)
}

// Delete removes a section. Orders of the remaining sections are
// recompacted by the store in the same transaction.
func (h *Sections) Delete(w http.ResponseWriter, r *http.Request) {
	portfolioID, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}
	sectionID, ok := sectionIDParam(r)
	if !ok {
		badRequest(w, "invalid section id")
		return
	}

	if err := h.sections.Delete(middleware.UserIDFromCtx(r.Context()), sectionID); err != nil {
		writeError(w, err, "delete section")
		return
	}

	h.invalidate(r.Context(), portfolioID)
	w.WriteHeader(http.StatusNoContent)
}

// reorderRequest is the JSON body for a full reorder: every section id of
// the portfolio in its new position.
type reorderRequest struct {
	SectionIDs []uuid.UUID `json:"section_ids"`
}

// Reorder rewrites the portfolio's section order to match the given id
// sequence. The store applies it atomically; an unknown id aborts the
// whole operation.
func (h *Sections) Reorder(w http.ResponseWriter, r *http.Request) {
	portfolioID, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if len(req.SectionIDs) == 0 {
		badRequest(w, "section_ids is required")
		return
	}
	if len(req.SectionIDs) > maxReorderLen {
		badRequest(w, "too many section ids")
		return
	}

	if err := h.sections.Reorder(middleware.UserIDFromCtx(r.Context()), portfolioID, req.SectionIDs); err != nil {
		writeError(w, err, "reorder sections")
		return
	}

	sections, err := h.sections.List(portfolioID)
	if err != nil {
		writeError(w, err, "list sections after reorder")
		return
	}

	h.invalidate(r.Context(), portfolioID)
	writeJSON(w, http.StatusOK, sections)
}

// Duplicate copies a section with all its settings. The copy is appended
// at the end of the portfolio.
func (h *Sections) Duplicate(w http.ResponseWriter, r *http.Request) {
	portfolioID, ok := portfolioIDParam(r)
	if !ok {
		badRequest(w, "invalid portfolio id")
		return
	}
	sectionID, ok := sectionIDParam(r)
	if !ok {
		badRequest(w, "invalid section id")
		return
	}

	sec, err := h.sections.Duplicate(middleware.UserIDFromCtx(r.Context()), sectionID)
	if err != nil {
		writeError(w, err, "duplicate section")
		return
	}

	h.invalidate(r.Context(), portfolioID)
	writeJSON(w, http.StatusCreated, sec)
}
