// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// cache.go provides an in-memory cache of compiled section templates.
// Template sources are compile-time constants keyed by section type name and
// layout variant, so entries never need invalidation — the cache only avoids
// re-parsing the same template on every render.
package renderer

import (
	"html/template"
	"sync"
)

// cacheKey identifies one compiled template: a section type at a layout.
type cacheKey struct {
	typeName string
	layout   string
}

// templateCache is a concurrency-safe cache of compiled section templates.
type templateCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*template.Template
}

// newTemplateCache creates an empty template cache.
func newTemplateCache() *templateCache {
	return &templateCache{
		entries: make(map[cacheKey]*template.Template),
	}
}

// get retrieves a compiled template. Returns nil on miss.
func (c *templateCache) get(typeName, layout string) *template.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[cacheKey{typeName: typeName, layout: layout}]
}

// put stores a compiled template.
func (c *templateCache) put(typeName, layout string, tmpl *template.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{typeName: typeName, layout: layout}] = tmpl
}
