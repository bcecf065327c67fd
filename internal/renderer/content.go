// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// content.go provides defensive accessors over section content. Content is
// stored as free-form JSON and nothing validates it at write time, so every
// read must tolerate missing fields and wrong value types.
package renderer

import "foliocraft/internal/models"

// str returns the string at key, or "" when absent or not a string.
func str(c models.JSONMap, key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// strOr returns the string at key, or fallback when absent or empty.
func strOr(c models.JSONMap, key, fallback string) string {
	if v := str(c, key); v != "" {
		return v
	}
	return fallback
}

// items returns the list of objects at key. Non-object entries are skipped.
func items(c models.JSONMap, key string) []models.JSONMap {
	raw, ok := c[key].([]any)
	if !ok {
		return nil
	}
	out := make([]models.JSONMap, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			out = append(out, models.JSONMap(m))
		}
	}
	return out
}

// strs returns the list of strings at key. Non-string entries are skipped.
func strs(c models.JSONMap, key string) []string {
	raw, ok := c[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
