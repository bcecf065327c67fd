package handlers

import (
	"strings"
	"unicode/utf8"

	"foliocraft/internal/models"
)

// Validation limits for portfolio and section fields.
const (
	maxTitleLen      = 300
	maxContentFields = 100
	maxContentValue  = 100_000
	maxStyleEntries  = 50
	maxStyleValueLen = 500
	maxLayoutLen     = 100
	maxReorderLen    = 200
)

// validatePortfolioTitle checks the portfolio title and returns the first
// error found.
func validatePortfolioTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	return ""
}

// validateContent bounds the size of a section content document. Shape is
// not enforced — every content field is optional and the renderer falls
// back per field — but unbounded payloads are rejected.
func validateContent(content models.JSONMap) string {
	return validateContentValue(map[string]any(content))
}

// validateContentValue walks nested lists and objects so the bounds apply
// at any depth, not just to top-level fields.
func validateContentValue(v any) string {
	switch val := v.(type) {
	case string:
		if utf8.RuneCountInString(val) > maxContentValue {
			return "A content field is too long (max 100,000 characters)."
		}
	case []any:
		if len(val) > maxContentFields {
			return "Content has too many entries (max 100)."
		}
		for _, item := range val {
			if msg := validateContentValue(item); msg != "" {
				return msg
			}
		}
	case map[string]any:
		if len(val) > maxContentFields {
			return "Content has too many fields (max 100)."
		}
		for _, item := range val {
			if msg := validateContentValue(item); msg != "" {
				return msg
			}
		}
	}
	return ""
}

// validateStyles bounds per-section style overrides.
func validateStyles(styles models.StyleMap) string {
	if len(styles) > maxStyleEntries {
		return "Too many style overrides (max 50)."
	}
	for _, v := range styles {
		if utf8.RuneCountInString(v) > maxStyleValueLen {
			return "A style value is too long (max 500 characters)."
		}
	}
	return ""
}

// validateLayout bounds the layout name. Unknown names are allowed here;
// the renderer falls back to the type's default layout.
func validateLayout(layout *string) string {
	if layout != nil && utf8.RuneCountInString(*layout) > maxLayoutLen {
		return "Layout name is too long (max 100 characters)."
	}
	return ""
}
