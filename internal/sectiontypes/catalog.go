// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go defines the built-in section type catalog. IDs are fixed so
// that stored sections keep referencing the same type across releases.
package sectiontypes

import (
	"github.com/google/uuid"

	"foliocraft/internal/models"
)

// styleAll marks a type whose every style key is editable.
var styleAll = []string{"all"}

// catalog is the full built-in catalog, in editor palette order.
var catalog = []models.SectionType{
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e01"),
		Name:        "hero",
		DisplayName: "Hero",
		Category:    models.CategoryHeader,
		ContentSchema: []models.ContentField{
			{Name: "title", Kind: models.FieldText, Required: true},
			{Name: "tagline", Kind: models.FieldText},
			{Name: "avatar_url", Kind: models.FieldImageURL},
			{Name: "cta_label", Kind: models.FieldText},
			{Name: "cta_url", Kind: models.FieldURL},
		},
		DefaultContent: models.JSONMap{
			"title":   "Your Name",
			"tagline": "What you do, in one line",
		},
		LayoutVariants: []string{"centered", "split", "minimal"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e02"),
		Name:        "about",
		DisplayName: "About",
		Category:    models.CategoryContent,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "body", Kind: models.FieldRichText},
			{Name: "photo_url", Kind: models.FieldImageURL},
		},
		DefaultContent: models.JSONMap{
			"heading": "About Me",
			"body":    "A few words about yourself.",
		},
		LayoutVariants: []string{"text", "text-photo", "photo-text"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e03"),
		Name:        "skills",
		DisplayName: "Skills",
		Category:    models.CategoryContent,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "skills", Kind: models.FieldList, Fields: []models.ContentField{
				{Name: "name", Kind: models.FieldText, Required: true},
				{Name: "level", Kind: models.FieldText},
			}},
		},
		DefaultContent: models.JSONMap{
			"heading": "Skills",
			"skills":  []any{},
		},
		LayoutVariants: []string{"tags", "bars", "grid"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e04"),
		Name:        "projects",
		DisplayName: "Projects",
		Category:    models.CategoryContent,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "projects", Kind: models.FieldList, Fields: []models.ContentField{
				{Name: "title", Kind: models.FieldText, Required: true},
				{Name: "description", Kind: models.FieldText},
				{Name: "image_url", Kind: models.FieldImageURL},
				{Name: "url", Kind: models.FieldURL},
				{Name: "tags", Kind: models.FieldList},
			}},
		},
		DefaultContent: models.JSONMap{
			"heading":  "Projects",
			"projects": []any{},
		},
		LayoutVariants: []string{"grid", "list", "cards"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e05"),
		Name:        "experience",
		DisplayName: "Experience",
		Category:    models.CategoryContent,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "entries", Kind: models.FieldList, Fields: []models.ContentField{
				{Name: "role", Kind: models.FieldText, Required: true},
				{Name: "company", Kind: models.FieldText},
				{Name: "period", Kind: models.FieldText},
				{Name: "summary", Kind: models.FieldText},
			}},
		},
		DefaultContent: models.JSONMap{
			"heading": "Experience",
			"entries": []any{},
		},
		LayoutVariants: []string{"timeline", "list"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e06"),
		Name:        "education",
		DisplayName: "Education",
		Category:    models.CategoryContent,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "entries", Kind: models.FieldList, Fields: []models.ContentField{
				{Name: "degree", Kind: models.FieldText, Required: true},
				{Name: "school", Kind: models.FieldText},
				{Name: "period", Kind: models.FieldText},
			}},
		},
		DefaultContent: models.JSONMap{
			"heading": "Education",
			"entries": []any{},
		},
		LayoutVariants: []string{"list", "timeline"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e07"),
		Name:        "testimonials",
		DisplayName: "Testimonials",
		Category:    models.CategorySocial,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "quotes", Kind: models.FieldList, Fields: []models.ContentField{
				{Name: "quote", Kind: models.FieldText, Required: true},
				{Name: "author", Kind: models.FieldText},
				{Name: "role", Kind: models.FieldText},
			}},
		},
		DefaultContent: models.JSONMap{
			"heading": "Testimonials",
			"quotes":  []any{},
		},
		LayoutVariants: []string{"cards", "carousel"},
		StyleOptions:   styleAll,
		IsActive:       true,
		IsPremium:      true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e08"),
		Name:        "gallery",
		DisplayName: "Gallery",
		Category:    models.CategoryMedia,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "images", Kind: models.FieldList, Fields: []models.ContentField{
				{Name: "url", Kind: models.FieldImageURL, Required: true},
				{Name: "caption", Kind: models.FieldText},
			}},
		},
		DefaultContent: models.JSONMap{
			"heading": "Gallery",
			"images":  []any{},
		},
		LayoutVariants: []string{"grid", "masonry"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e09"),
		Name:        "contact",
		DisplayName: "Contact",
		Category:    models.CategorySocial,
		ContentSchema: []models.ContentField{
			{Name: "heading", Kind: models.FieldText},
			{Name: "email", Kind: models.FieldText},
			{Name: "phone", Kind: models.FieldText},
			{Name: "location", Kind: models.FieldText},
			{Name: "links", Kind: models.FieldList, Fields: []models.ContentField{
				{Name: "label", Kind: models.FieldText, Required: true},
				{Name: "url", Kind: models.FieldURL, Required: true},
			}},
		},
		DefaultContent: models.JSONMap{
			"heading": "Get in Touch",
		},
		LayoutVariants: []string{"simple", "split"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
	{
		ID:          uuid.MustParse("0d2f1c3a-9b0e-4a71-8f4d-1a2b3c4d5e0a"),
		Name:        "custom",
		DisplayName: "Custom Block",
		Category:    models.CategoryContent,
		ContentSchema: []models.ContentField{
			{Name: "body", Kind: models.FieldRichText},
		},
		DefaultContent: models.JSONMap{
			"body": "",
		},
		LayoutVariants: []string{"full", "narrow"},
		StyleOptions:   styleAll,
		IsActive:       true,
	},
}
