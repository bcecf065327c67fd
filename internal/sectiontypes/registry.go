// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sectiontypes holds the static catalog of section kinds a portfolio
// can be assembled from. The catalog is compile-time data: entries describe
// the content shape, default content, and layout variants of each kind.
// Lookups return nil or empty results on miss, never an error.
package sectiontypes

import (
	"sort"

	"github.com/google/uuid"

	"foliocraft/internal/models"
)

// Registry answers read-only lookups over the section type catalog.
type Registry struct {
	byID   map[uuid.UUID]*models.SectionType
	byName map[string]*models.SectionType
	names  []string // catalog order, for stable listings
}

// New builds a registry over the built-in catalog.
func New() *Registry {
	return newRegistry(catalog)
}

func newRegistry(types []models.SectionType) *Registry {
	r := &Registry{
		byID:   make(map[uuid.UUID]*models.SectionType, len(types)),
		byName: make(map[string]*models.SectionType, len(types)),
	}
	for i := range types {
		t := &types[i]
		r.byID[t.ID] = t
		r.byName[t.Name] = t
		r.names = append(r.names, t.Name)
	}
	return r
}

// FindByID returns the section type with the given id, or nil.
func (r *Registry) FindByID(id uuid.UUID) *models.SectionType {
	return r.byID[id]
}

// FindByName returns the section type with the given name, or nil.
func (r *Registry) FindByName(name string) *models.SectionType {
	return r.byName[name]
}

// FindByCategory returns all section types in the given category, in catalog
// order. Returns an empty slice for unknown categories.
func (r *Registry) FindByCategory(category models.SectionCategory) []models.SectionType {
	var out []models.SectionType
	for _, name := range r.names {
		if t := r.byName[name]; t.Category == category {
			out = append(out, *t)
		}
	}
	return out
}

// ListActive returns all active section types, optionally filtered by
// category (empty category means no filter).
func (r *Registry) ListActive(category models.SectionCategory) []models.SectionType {
	var out []models.SectionType
	for _, name := range r.names {
		t := r.byName[name]
		if !t.IsActive {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// ListCategories returns the distinct categories present in the catalog,
// sorted alphabetically.
func (r *Registry) ListCategories() []models.SectionCategory {
	seen := make(map[models.SectionCategory]bool)
	var out []models.SectionCategory
	for _, name := range r.names {
		c := r.byName[name].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
