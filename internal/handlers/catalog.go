// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"foliocraft/internal/models"
	"foliocraft/internal/sectiontypes"
	"foliocraft/internal/store"
)

// Catalog serves the read-only reference data editors build against: the
// section type registry and the shared theme library.
type Catalog struct {
	registry *sectiontypes.Registry
	themes   *store.ThemeStore
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(registry *sectiontypes.Registry, themes *store.ThemeStore) *Catalog {
	return &Catalog{registry: registry, themes: themes}
}

// SectionTypes lists active section types, optionally filtered by the
// ?category= query parameter.
func (h *Catalog) SectionTypes(w http.ResponseWriter, r *http.Request) {
	category := models.SectionCategory(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, h.registry.ListActive(category))
}

// SectionTypeCategories lists the distinct categories in the registry.
func (h *Catalog) SectionTypeCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.ListCategories())
}

// Themes lists all public themes.
func (h *Catalog) Themes(w http.ResponseWriter, r *http.Request) {
	items, err := h.themes.List()
	if err != nil {
		writeError(w, err, "list themes")
		return
	}
	if items == nil {
		items = []models.Theme{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Theme returns a single theme by id.
func (h *Catalog) Theme(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "themeID"))
	if err != nil {
		badRequest(w, "invalid theme id")
		return
	}

	th, err := h.themes.FindByID(id)
	if err != nil {
		writeError(w, err, "get theme")
		return
	}
	if th == nil {
		writeError(w, store.ErrNotFound, "get theme")
		return
	}
	writeJSON(w, http.StatusOK, th)
}
