// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ThemeCategory distinguishes light and dark themes in pickers.
type ThemeCategory string

const (
	ThemeCategoryLight ThemeCategory = "light"
	ThemeCategoryDark  ThemeCategory = "dark"
)

// ThemeColors holds the full color palette of a theme: brand colors,
// background at three depths, text at four levels, status colors, and
// separators. Empty values fall back to the default palette at resolve time.
type ThemeColors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`

	Background         string `json:"background,omitempty"`
	BackgroundAlt      string `json:"background_alt,omitempty"`
	BackgroundElevated string `json:"background_elevated,omitempty"`

	Text          string `json:"text,omitempty"`
	TextSecondary string `json:"text_secondary,omitempty"`
	TextMuted     string `json:"text_muted,omitempty"`
	TextInverse   string `json:"text_inverse,omitempty"`

	Success string `json:"success,omitempty"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
	Info    string `json:"info,omitempty"`

	Border  string `json:"border,omitempty"`
	Divider string `json:"divider,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (c ThemeColors) Value() (driver.Value, error) { return json.Marshal(c) }

// Scan implements sql.Scanner for JSONB retrieval.
func (c *ThemeColors) Scan(src any) error { return scanJSON(src, c) }

// ThemeFonts names the font stacks used across a portfolio.
type ThemeFonts struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
	Mono    string `json:"mono,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (f ThemeFonts) Value() (driver.Value, error) { return json.Marshal(f) }

// Scan implements sql.Scanner for JSONB retrieval.
func (f *ThemeFonts) Scan(src any) error { return scanJSON(src, f) }

// Scale is a named size table (xs…5xl, tight…loose, and so on). Used for
// font sizes, weights, line heights, spacing, radii, border widths, shadows,
// and breakpoints.
type Scale map[string]string

// Value implements driver.Valuer for JSONB storage.
func (s Scale) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (s *Scale) Scan(src any) error { return scanJSON(src, s) }

// ThemeAnimations holds named duration and easing tables.
type ThemeAnimations struct {
	Durations Scale `json:"durations,omitempty"`
	Easings   Scale `json:"easings,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (a ThemeAnimations) Value() (driver.Value, error) { return json.Marshal(a) }

// Scan implements sql.Scanner for JSONB retrieval.
func (a *ThemeAnimations) Scan(src any) error { return scanJSON(src, a) }

// Theme is a named, reusable bundle of design tokens. Themes are shared
// resources: a portfolio references at most one by id, and UsageCount tracks
// how many portfolios have assigned it. A missing theme falls back to the
// built-in default token set at resolve time.
type Theme struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Colors       ThemeColors     `json:"colors"`
	Fonts        ThemeFonts      `json:"fonts"`
	FontSizes    Scale           `json:"font_sizes"`
	FontWeights  Scale           `json:"font_weights"`
	LineHeights  Scale           `json:"line_heights"`
	Spacing      Scale           `json:"spacing"`
	BorderRadius Scale           `json:"border_radius"`
	BorderWidth  Scale           `json:"border_width"`
	Shadows      Scale           `json:"shadows"`
	Animations   ThemeAnimations `json:"animations"`
	Breakpoints  Scale           `json:"breakpoints"`
	CustomCSS    *string         `json:"custom_css,omitempty"` // opaque, never parsed
	Category     ThemeCategory   `json:"category"`
	IsDefault    bool            `json:"is_default"`
	IsPublic     bool            `json:"is_public"`
	IsPremium    bool            `json:"is_premium"`
	UsageCount   int             `json:"usage_count"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
