// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package renderer turns portfolio sections into HTML. Each section type has
// a renderer in a dispatch table; a section whose type name is not in the
// table is logged and skipped so one retired type never breaks the rest of
// the page. Rendering is a pure function of section content, layout, style
// overrides, and resolved theme tokens — no store or network access.
package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"foliocraft/internal/markdown"
	"foliocraft/internal/models"
	"foliocraft/internal/theme"
)

// PageSection pairs a stored section with its resolved type metadata.
// Type is nil when the stored type id is no longer in the catalog.
type PageSection struct {
	Section models.PortfolioSection
	Type    *models.SectionType
}

// Renderer renders sections and whole portfolio pages. Compiled section
// templates are cached across calls; the Renderer is safe for concurrent use.
type Renderer struct {
	cache *templateCache
}

// New creates a Renderer with an empty template cache.
func New() *Renderer {
	return &Renderer{cache: newTemplateCache()}
}

// Input carries everything a section renderer may consume.
type Input struct {
	Content models.JSONMap
	Layout  string
	Tokens  theme.Tokens
}

// renderFunc produces the inner HTML of one section.
type renderFunc func(r *Renderer, in Input) (template.HTML, error)

// funcs is the template function map shared by all section templates.
var funcs = template.FuncMap{
	// markdown converts a rich-text field to HTML. On conversion failure the
	// raw text is emitted escaped instead.
	"markdown": func(source string) template.HTML {
		html, err := markdown.ToHTML(source)
		if err != nil {
			slog.Warn("markdown conversion failed", "error", err)
			return template.HTML(template.HTMLEscapeString(source))
		}
		return template.HTML(html)
	},
}

// RenderPortfolio renders the visible sections of a portfolio into a full
// HTML document using the given theme (nil theme means default tokens).
// Sections that fail to render are logged and omitted; the rest of the page
// still renders.
func (r *Renderer) RenderPortfolio(p *models.Portfolio, sections []PageSection, th *models.Theme) ([]byte, error) {
	tokens := theme.Resolve(th)

	var body bytes.Buffer
	for _, ps := range sections {
		if !ps.Section.IsVisible {
			continue
		}
		html, err := r.RenderSection(ps.Section, ps.Type, tokens)
		if err != nil {
			slog.Warn("section render failed, skipping",
				"section_id", ps.Section.ID,
				"error", err,
			)
			continue
		}
		body.WriteString(string(html))
	}

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&doc, "<title>%s</title>\n", template.HTMLEscapeString(p.Title))
	doc.WriteString("<style>\n")
	doc.WriteString(tokens.CSSVariables())
	doc.WriteString("\n")
	doc.WriteString(baseCSS)
	if tokens.CustomCSS != "" {
		// Opaque raw style block from the theme, appended once, never parsed.
		doc.WriteString("\n")
		doc.WriteString(tokens.CustomCSS)
	}
	doc.WriteString("\n</style>\n</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")

	return doc.Bytes(), nil
}

// RenderSection renders a single section to its <section> fragment. An
// unknown or nil type is logged and produces empty output with no error.
func (r *Renderer) RenderSection(sec models.PortfolioSection, st *models.SectionType, tokens theme.Tokens) (template.HTML, error) {
	if st == nil {
		slog.Warn("section references unknown type, skipping", "section_id", sec.ID)
		return "", nil
	}
	fn, ok := sectionRenderers[st.Name]
	if !ok {
		slog.Warn("no renderer for section type, skipping",
			"section_id", sec.ID,
			"type", st.Name,
		)
		return "", nil
	}

	layout := st.DefaultLayout()
	if sec.Layout != nil && st.HasLayout(*sec.Layout) {
		layout = *sec.Layout
	}

	content := sec.Content
	if content == nil {
		content = models.JSONMap{}
	}

	inner, err := fn(r, Input{Content: content, Layout: layout, Tokens: tokens})
	if err != nil {
		return "", fmt.Errorf("render %s section: %w", st.Name, err)
	}

	var b strings.Builder
	b.WriteString(`<section class="section section-`)
	b.WriteString(st.Name)
	b.WriteString(` layout-`)
	b.WriteString(layout)
	b.WriteString(`" style="`)
	b.WriteString(template.HTMLEscapeString(sectionStyle(sec.Styles)))
	b.WriteString(`"`)
	writeAnimationAttrs(&b, sec.Animations)
	b.WriteString(">")
	b.WriteString(string(inner))
	b.WriteString("</section>\n")
	return template.HTML(b.String()), nil
}

// styleKeys is the recognized override keys, in output order so the inline
// style attribute is deterministic.
var styleKeys = []string{"background", "padding", "margin", "text-align", "background-image"}

// sectionStyle merges per-section style overrides over the theme-derived
// section defaults and returns an inline CSS declaration list.
func sectionStyle(overrides models.StyleMap) string {
	merged := map[string]string{
		"background": "var(--color-bg)",
		"padding":    "var(--space-xl) var(--space-lg)",
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if key == "background-image" {
			merged[key] = fmt.Sprintf("url(%s)", value)
			merged["background-size"] = "cover"
			merged["background-position"] = "center"
			continue
		}
		merged[key] = value
	}

	var parts []string
	for _, key := range styleKeys {
		if v, ok := merged[key]; ok {
			parts = append(parts, key+":"+v)
		}
	}
	if _, ok := merged["background-image"]; ok {
		parts = append(parts, "background-size:"+merged["background-size"])
		parts = append(parts, "background-position:"+merged["background-position"])
	}
	return strings.Join(parts, ";")
}

// writeAnimationAttrs emits data attributes for the section's entrance
// animation. The public page script reads them to apply transitions.
func writeAnimationAttrs(b *strings.Builder, a *models.Animations) {
	if a == nil || !a.Enabled {
		return
	}
	transition := a.Transition
	if transition == "" {
		transition = "fade"
	}
	duration := a.DurationMS
	if duration <= 0 {
		duration = 300
	}
	easing := a.Easing
	if easing == "" {
		easing = "ease-in-out"
	}
	fmt.Fprintf(b, ` data-animate="%s" data-duration="%dms" data-delay="%dms" data-easing="%s"`,
		template.HTMLEscapeString(transition), duration, a.DelayMS, template.HTMLEscapeString(easing))
}

// render compiles (with caching) and executes the template for one section
// type at one layout.
func (r *Renderer) render(typeName, layout, source string, data any) (template.HTML, error) {
	tmpl := r.cache.get(typeName, layout)
	if tmpl == nil {
		var err error
		tmpl, err = template.New(typeName + "/" + layout).Funcs(funcs).Parse(source)
		if err != nil {
			return "", fmt.Errorf("compile template %s/%s: %w", typeName, layout, err)
		}
		r.cache.put(typeName, layout, tmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s/%s: %w", typeName, layout, err)
	}
	return template.HTML(buf.String()), nil
}

// baseCSS is the structural stylesheet shared by every rendered portfolio.
// All visual values come from theme tokens; layout classes only arrange.
const baseCSS = `
*{box-sizing:border-box;margin:0}
body{font-family:var(--font-body);color:var(--color-text);background:var(--color-bg);line-height:var(--line-height-normal)}
h1,h2,h3{font-family:var(--font-heading);line-height:var(--line-height-tight)}
a{color:var(--color-primary)}
.section{max-width:var(--breakpoint-lg);margin-left:auto;margin-right:auto}
.section h2{font-size:var(--font-size-3xl);font-weight:var(--font-weight-bold);margin-bottom:var(--space-lg)}
.section-hero h1{font-size:var(--font-size-5xl);font-weight:var(--font-weight-bold)}
.section-hero .tagline{font-size:var(--font-size-xl);color:var(--color-text-secondary);margin-top:var(--space-sm)}
.section-hero .cta{display:inline-block;margin-top:var(--space-lg);padding:var(--space-sm) var(--space-lg);background:var(--color-primary);color:var(--color-text-inverse);border-radius:var(--radius-md);text-decoration:none}
.layout-centered{text-align:center}
.layout-split .cols,.layout-text-photo .cols,.layout-photo-text .cols{display:flex;gap:var(--space-lg);align-items:center}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(260px,1fr));gap:var(--space-lg)}
.card{background:var(--color-bg-elevated);border:var(--border-thin) solid var(--color-border);border-radius:var(--radius-lg);box-shadow:var(--shadow-sm);padding:var(--space-md)}
.tag{display:inline-block;padding:var(--space-xs) var(--space-sm);margin:var(--space-xs);background:var(--color-bg-alt);border-radius:var(--radius-full);font-size:var(--font-size-sm)}
.bar{background:var(--color-bg-alt);border-radius:var(--radius-full);overflow:hidden;height:var(--space-sm)}
.bar>span{display:block;height:100%;background:var(--color-primary)}
.timeline{list-style:none;padding-left:var(--space-lg);border-left:var(--border-thick) solid var(--color-divider)}
.timeline li{margin-bottom:var(--space-lg)}
.muted{color:var(--color-text-muted);font-size:var(--font-size-sm)}
blockquote{border-left:var(--border-thick) solid var(--color-accent);padding-left:var(--space-md);font-style:italic}
figure img{width:100%;border-radius:var(--radius-md)}
`
