// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// SectionCategory groups section types in the editor palette.
type SectionCategory string

const (
	CategoryHeader  SectionCategory = "header"
	CategoryContent SectionCategory = "content"
	CategoryMedia   SectionCategory = "media"
	CategorySocial  SectionCategory = "social"
)

// FieldKind describes the expected value shape of a content field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldRichText FieldKind = "richtext" // markdown, rendered to HTML
	FieldImageURL FieldKind = "image_url"
	FieldURL      FieldKind = "url"
	FieldList     FieldKind = "list" // repeated objects, see Fields
)

// ContentField describes one expected field of a section's content. The
// schema is advisory: the write path does not enforce it, and renderers
// treat every field as optional.
type ContentField struct {
	Name     string         `json:"name"`
	Kind     FieldKind      `json:"kind"`
	Required bool           `json:"required"`
	Fields   []ContentField `json:"fields,omitempty"` // item shape for FieldList
}

// SectionType is the catalog definition of a kind of section: its content
// shape, defaults, and selectable layout variants. Entries are immutable and
// defined in code (see the sectiontypes package).
type SectionType struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"` // unique key, e.g. "hero"
	DisplayName    string          `json:"display_name"`
	Category       SectionCategory `json:"category"`
	ContentSchema  []ContentField  `json:"content_schema"`
	DefaultContent JSONMap         `json:"default_content"`
	LayoutVariants []string        `json:"layout_variants"`
	StyleOptions   []string        `json:"style_options"` // editable style keys, or ["all"]
	IsActive       bool            `json:"is_active"`
	IsPremium      bool            `json:"is_premium"`
}

// DefaultLayout returns the first declared layout variant, or "" when the
// type declares none. Renderers fall back to it for unset or invalid layouts.
func (t *SectionType) DefaultLayout() string {
	if len(t.LayoutVariants) == 0 {
		return ""
	}
	return t.LayoutVariants[0]
}

// HasLayout reports whether name is one of the type's declared variants.
func (t *SectionType) HasLayout(name string) bool {
	for _, v := range t.LayoutVariants {
		if v == name {
			return true
		}
	}
	return false
}
