// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio is the owning aggregate for an ordered list of sections. It is
// the authorization boundary: every section mutation compares the caller
// against UserID. ThemeID is nil when the portfolio uses the built-in
// default theme.
type Portfolio struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	ThemeID     *uuid.UUID `json:"theme_id,omitempty"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
