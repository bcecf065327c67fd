// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store handles all database operations for portfolios, sections,
// and themes. Mutations run as short-lived transactions; multi-row
// operations (reorder, delete recompaction) are atomic, and structural
// mutations serialize on the owning portfolio row so the section order
// invariant holds under concurrency.
package store

import "errors"

var (
	// ErrNotFound is returned when a referenced portfolio, section, or
	// theme does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller is not the owner of the
	// resource being mutated.
	ErrForbidden = errors.New("forbidden")
)
