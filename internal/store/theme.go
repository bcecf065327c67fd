// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"foliocraft/internal/models"
)

// ThemeStore handles theme rows. Themes are shared read-mostly resources
// from this service's perspective: portfolios reference them by id and the
// resolver turns them into token sets. Editing happens elsewhere.
type ThemeStore struct {
	db *sql.DB
}

// NewThemeStore creates a new ThemeStore.
func NewThemeStore(db *sql.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// themeColumns lists the columns selected in theme queries.
const themeColumns = `id, name, colors, fonts, font_sizes, font_weights, line_heights, spacing,
	border_radius, border_width, shadows, animations, breakpoints, custom_css,
	category, is_default, is_public, is_premium, usage_count, created_at, updated_at`

// scanTheme scans a theme row from the result set.
func scanTheme(scanner interface{ Scan(...any) error }) (*models.Theme, error) {
	var t models.Theme
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Colors, &t.Fonts, &t.FontSizes, &t.FontWeights, &t.LineHeights, &t.Spacing,
		&t.BorderRadius, &t.BorderWidth, &t.Shadows, &t.Animations, &t.Breakpoints, &t.CustomCSS,
		&t.Category, &t.IsDefault, &t.IsPublic, &t.IsPremium, &t.UsageCount, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all public themes, default first, then by name.
func (s *ThemeStore) List() ([]models.Theme, error) {
	rows, err := s.db.Query(`
		SELECT ` + themeColumns + `
		FROM themes
		WHERE is_public = TRUE
		ORDER BY is_default DESC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var items []models.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a theme by its UUID. Returns nil if not found — callers
// fall back to the built-in default token set.
func (s *ThemeStore) FindByID(id uuid.UUID) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE id = $1`, id)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by id: %w", err)
	}
	return t, nil
}

// FindDefault returns the theme marked as default, or nil if none is.
func (s *ThemeStore) FindDefault() (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT ` + themeColumns + ` FROM themes WHERE is_default = TRUE LIMIT 1`)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find default theme: %w", err)
	}
	return t, nil
}

// ForPortfolio resolves the theme assigned to a portfolio. Returns nil when
// the portfolio has no theme or the referenced theme no longer exists; the
// caller then renders with default tokens.
func (s *ThemeStore) ForPortfolio(p *models.Portfolio) (*models.Theme, error) {
	if p.ThemeID == nil {
		return nil, nil
	}
	return s.FindByID(*p.ThemeID)
}
