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

// Animations configures the entrance animation of a single section.
// Stored as a JSONB column; nil means the section uses no animation.
type Animations struct {
	Enabled    bool   `json:"enabled"`
	Transition string `json:"transition,omitempty"` // e.g. "fade", "slide-up"
	DurationMS int    `json:"duration_ms,omitempty"`
	DelayMS    int    `json:"delay_ms,omitempty"`
	Easing     string `json:"easing,omitempty"` // e.g. "ease-in-out"
}

// Value implements driver.Valuer for JSONB storage.
func (a *Animations) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (a *Animations) Scan(src any) error {
	return scanJSON(src, a)
}

// PortfolioSection is one content block of a portfolio: typed, ordered,
// independently styleable. SortOrder values for a portfolio's sections are
// kept as a contiguous zero-based sequence after every successful mutation.
type PortfolioSection struct {
	ID            uuid.UUID   `json:"id"`
	PortfolioID   uuid.UUID   `json:"portfolio_id"`
	SectionTypeID uuid.UUID   `json:"section_type_id"`
	SortOrder     int         `json:"order"`
	IsVisible     bool        `json:"is_visible"`
	Content       JSONMap     `json:"content"`
	Styles        StyleMap    `json:"styles,omitempty"`
	Layout        *string     `json:"layout,omitempty"`
	Animations    *Animations `json:"animations,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
