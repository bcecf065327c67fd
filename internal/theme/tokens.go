// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme resolves a stored Theme into the flat token set consumed by
// the section renderer. Resolution is a pure function: it reads the theme,
// overlays it on the built-in defaults, and returns a fully populated set —
// renderers never see a missing token.
package theme

import (
	"sort"
	"strings"

	"foliocraft/internal/models"
)

// Tokens is a resolved, immutable-by-convention design token set. Vars maps
// flat token names (e.g. "color-primary", "space-md") to CSS values.
// CustomCSS is the theme's opaque raw style block, passed through unparsed.
type Tokens struct {
	Vars      map[string]string
	CustomCSS string
}

// Get returns the value of a named token, or "" if the name is unknown.
func (t Tokens) Get(name string) string {
	return t.Vars[name]
}

// CSSVariables renders the token set as a :root CSS custom-property block.
// Output is sorted by token name so rendering is deterministic.
func (t Tokens) CSSVariables() string {
	names := make([]string, 0, len(t.Vars))
	for name := range t.Vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root{")
	for _, name := range names {
		b.WriteString("--")
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(t.Vars[name])
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}

// Resolve turns a theme into a complete token set. A nil theme yields the
// built-in default set. Empty theme values keep their default, so the result
// always covers every token name in Defaults.
func Resolve(th *models.Theme) Tokens {
	vars := make(map[string]string, len(defaultVars))
	for name, value := range defaultVars {
		vars[name] = value
	}

	t := Tokens{Vars: vars}
	if th == nil {
		return t
	}

	overlayColors(vars, th.Colors)
	overlayFonts(vars, th.Fonts)
	overlayScale(vars, "font-size-", th.FontSizes)
	overlayScale(vars, "font-weight-", th.FontWeights)
	overlayScale(vars, "line-height-", th.LineHeights)
	overlayScale(vars, "space-", th.Spacing)
	overlayScale(vars, "radius-", th.BorderRadius)
	overlayScale(vars, "border-", th.BorderWidth)
	overlayScale(vars, "shadow-", th.Shadows)
	overlayScale(vars, "duration-", th.Animations.Durations)
	overlayScale(vars, "easing-", th.Animations.Easings)
	overlayScale(vars, "breakpoint-", th.Breakpoints)

	if th.CustomCSS != nil {
		t.CustomCSS = *th.CustomCSS
	}
	return t
}

// overlayColors copies non-empty palette fields over the defaults.
func overlayColors(vars map[string]string, c models.ThemeColors) {
	set := func(name, value string) {
		if value != "" {
			vars[name] = value
		}
	}
	set("color-primary", c.Primary)
	set("color-secondary", c.Secondary)
	set("color-accent", c.Accent)
	set("color-bg", c.Background)
	set("color-bg-alt", c.BackgroundAlt)
	set("color-bg-elevated", c.BackgroundElevated)
	set("color-text", c.Text)
	set("color-text-secondary", c.TextSecondary)
	set("color-text-muted", c.TextMuted)
	set("color-text-inverse", c.TextInverse)
	set("color-success", c.Success)
	set("color-warning", c.Warning)
	set("color-error", c.Error)
	set("color-info", c.Info)
	set("color-border", c.Border)
	set("color-divider", c.Divider)
}

// overlayFonts copies non-empty font stacks over the defaults.
func overlayFonts(vars map[string]string, f models.ThemeFonts) {
	if f.Heading != "" {
		vars["font-heading"] = f.Heading
	}
	if f.Body != "" {
		vars["font-body"] = f.Body
	}
	if f.Mono != "" {
		vars["font-mono"] = f.Mono
	}
}

// overlayScale copies a named scale over the defaults under the given prefix.
func overlayScale(vars map[string]string, prefix string, s models.Scale) {
	for name, value := range s {
		if value != "" {
			vars[prefix+name] = value
		}
	}
}
