// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// json.go provides JSONB column types. Section content, style overrides,
// animation settings, and theme token groups are stored as JSONB rows, so
// each type implements driver.Valuer and sql.Scanner.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a free-form JSON object column. Section content uses it because
// the content schema is advisory: any shape is accepted and stored, and
// consumers must handle missing or extra fields.
type JSONMap map[string]any

// Value implements driver.Valuer for JSONB storage.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *JSONMap) Scan(src any) error {
	return scanJSON(src, m)
}

// StyleMap holds per-section style overrides (background, padding, margin,
// text-align, background-image). Keys are CSS-ish names, values raw strings.
type StyleMap map[string]string

// Value implements driver.Valuer for JSONB storage.
func (m StyleMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *StyleMap) Scan(src any) error {
	return scanJSON(src, m)
}

// scanJSON decodes a JSONB column into dst. NULL leaves dst at its zero value.
func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("scan json: unsupported source type %T", src)
	}
}
