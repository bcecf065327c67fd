// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// sections.go implements the per-type section renderers. Every content
// field is optional: a missing value renders as nothing (or a neutral
// default), never as an error.
package renderer

import "html/template"

// sectionRenderers is the dispatch table from section type name to renderer.
// Names not present here are skipped by RenderSection.
var sectionRenderers = map[string]renderFunc{
	"hero":         renderHero,
	"about":        renderAbout,
	"skills":       renderSkills,
	"projects":     renderProjects,
	"experience":   renderExperience,
	"education":    renderEducation,
	"testimonials": renderTestimonials,
	"gallery":      renderGallery,
	"contact":      renderContact,
	"custom":       renderCustom,
}

const heroTmpl = `<div class="inner{{if .Split}} cols{{end}}">
{{- if .AvatarURL}}<img class="avatar" src="{{.AvatarURL}}" alt="">{{end -}}
<div>
<h1>{{.Title}}</h1>
{{- if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end -}}
{{- if and .CTALabel .CTAURL}}<a class="cta" href="{{.CTAURL}}">{{.CTALabel}}</a>{{end -}}
</div>
</div>`

func renderHero(r *Renderer, in Input) (template.HTML, error) {
	data := struct {
		Title, Tagline, AvatarURL, CTALabel, CTAURL string
		Split                                       bool
	}{
		Title:     strOr(in.Content, "title", "Untitled"),
		Tagline:   str(in.Content, "tagline"),
		AvatarURL: str(in.Content, "avatar_url"),
		CTALabel:  str(in.Content, "cta_label"),
		CTAURL:    str(in.Content, "cta_url"),
		Split:     in.Layout == "split",
	}
	return r.render("hero", in.Layout, heroTmpl, data)
}

const aboutTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="cols">
{{- if and .PhotoURL .PhotoFirst}}<img class="photo" src="{{.PhotoURL}}" alt="">{{end -}}
<div class="prose">{{markdown .Body}}</div>
{{- if and .PhotoURL (not .PhotoFirst)}}<img class="photo" src="{{.PhotoURL}}" alt="">{{end -}}
</div>`

func renderAbout(r *Renderer, in Input) (template.HTML, error) {
	data := struct {
		Heading, Body, PhotoURL string
		PhotoFirst              bool
	}{
		Heading:    str(in.Content, "heading"),
		Body:       str(in.Content, "body"),
		PhotoURL:   str(in.Content, "photo_url"),
		PhotoFirst: in.Layout == "photo-text",
	}
	if in.Layout == "text" {
		data.PhotoURL = ""
	}
	return r.render("about", in.Layout, aboutTmpl, data)
}

const skillsTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
{{- if eq .Layout "bars" -}}
<ul class="skill-bars">
{{- range .Skills}}<li><span>{{.Name}}</span><div class="bar"><span style="width:{{.Percent}}%"></span></div></li>{{end -}}
</ul>
{{- else -}}
<div class="{{if eq .Layout "grid"}}grid{{else}}tags{{end}}">
{{- range .Skills}}<span class="tag">{{.Name}}{{if .Level}} · {{.Level}}{{end}}</span>{{end -}}
</div>
{{- end -}}`

// skillLevels maps the named proficiency levels to bar widths.
var skillLevels = map[string]int{
	"beginner":     25,
	"intermediate": 50,
	"advanced":     75,
	"expert":       95,
}

func renderSkills(r *Renderer, in Input) (template.HTML, error) {
	type skill struct {
		Name, Level string
		Percent     int
	}
	var list []skill
	for _, it := range items(in.Content, "skills") {
		name := str(it, "name")
		if name == "" {
			continue
		}
		level := str(it, "level")
		percent, ok := skillLevels[level]
		if !ok {
			percent = 50
		}
		list = append(list, skill{Name: name, Level: level, Percent: percent})
	}
	data := struct {
		Heading, Layout string
		Skills          []skill
	}{
		Heading: str(in.Content, "heading"),
		Layout:  in.Layout,
		Skills:  list,
	}
	return r.render("skills", in.Layout, skillsTmpl, data)
}

const projectsTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="{{if eq .Layout "list"}}list{{else}}grid{{end}}">
{{- range .Projects}}
<article class="card">
{{- if .ImageURL}}<img src="{{.ImageURL}}" alt="">{{end -}}
<h3>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
{{- if .Description}}<p>{{.Description}}</p>{{end -}}
{{- range .Tags}}<span class="tag">{{.}}</span>{{end -}}
</article>
{{- end}}
</div>`

func renderProjects(r *Renderer, in Input) (template.HTML, error) {
	type project struct {
		Title, Description, ImageURL, URL string
		Tags                              []string
	}
	var list []project
	for _, it := range items(in.Content, "projects") {
		title := str(it, "title")
		if title == "" {
			continue
		}
		list = append(list, project{
			Title:       title,
			Description: str(it, "description"),
			ImageURL:    str(it, "image_url"),
			URL:         str(it, "url"),
			Tags:        strs(it, "tags"),
		})
	}
	data := struct {
		Heading, Layout string
		Projects        []project
	}{
		Heading:  str(in.Content, "heading"),
		Layout:   in.Layout,
		Projects: list,
	}
	return r.render("projects", in.Layout, projectsTmpl, data)
}

const experienceTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<ul class="{{if eq .Layout "timeline"}}timeline{{else}}entries{{end}}">
{{- range .Entries}}
<li>
<h3>{{.Role}}{{if .Company}} — {{.Company}}{{end}}</h3>
{{- if .Period}}<p class="muted">{{.Period}}</p>{{end -}}
{{- if .Summary}}<p>{{.Summary}}</p>{{end -}}
</li>
{{- end}}
</ul>`

func renderExperience(r *Renderer, in Input) (template.HTML, error) {
	type entry struct{ Role, Company, Period, Summary string }
	var list []entry
	for _, it := range items(in.Content, "entries") {
		role := str(it, "role")
		if role == "" {
			continue
		}
		list = append(list, entry{
			Role:    role,
			Company: str(it, "company"),
			Period:  str(it, "period"),
			Summary: str(it, "summary"),
		})
	}
	data := struct {
		Heading, Layout string
		Entries         []entry
	}{
		Heading: str(in.Content, "heading"),
		Layout:  in.Layout,
		Entries: list,
	}
	return r.render("experience", in.Layout, experienceTmpl, data)
}

const educationTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<ul class="{{if eq .Layout "timeline"}}timeline{{else}}entries{{end}}">
{{- range .Entries}}
<li>
<h3>{{.Degree}}</h3>
{{- if .School}}<p>{{.School}}</p>{{end -}}
{{- if .Period}}<p class="muted">{{.Period}}</p>{{end -}}
</li>
{{- end}}
</ul>`

func renderEducation(r *Renderer, in Input) (template.HTML, error) {
	type entry struct{ Degree, School, Period string }
	var list []entry
	for _, it := range items(in.Content, "entries") {
		degree := str(it, "degree")
		if degree == "" {
			continue
		}
		list = append(list, entry{
			Degree: degree,
			School: str(it, "school"),
			Period: str(it, "period"),
		})
	}
	data := struct {
		Heading, Layout string
		Entries         []entry
	}{
		Heading: str(in.Content, "heading"),
		Layout:  in.Layout,
		Entries: list,
	}
	return r.render("education", in.Layout, educationTmpl, data)
}

const testimonialsTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="grid">
{{- range .Quotes}}
<blockquote class="card">
<p>{{.Quote}}</p>
{{- if .Author}}<footer class="muted">{{.Author}}{{if .Role}}, {{.Role}}{{end}}</footer>{{end -}}
</blockquote>
{{- end}}
</div>`

func renderTestimonials(r *Renderer, in Input) (template.HTML, error) {
	type quote struct{ Quote, Author, Role string }
	var list []quote
	for _, it := range items(in.Content, "quotes") {
		q := str(it, "quote")
		if q == "" {
			continue
		}
		list = append(list, quote{Quote: q, Author: str(it, "author"), Role: str(it, "role")})
	}
	data := struct {
		Heading string
		Quotes  []quote
	}{
		Heading: str(in.Content, "heading"),
		Quotes:  list,
	}
	return r.render("testimonials", in.Layout, testimonialsTmpl, data)
}

const galleryTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div class="grid gallery-{{.Layout}}">
{{- range .Images}}
<figure><img src="{{.URL}}" alt="{{.Caption}}" loading="lazy">{{if .Caption}}<figcaption class="muted">{{.Caption}}</figcaption>{{end}}</figure>
{{- end}}
</div>`

func renderGallery(r *Renderer, in Input) (template.HTML, error) {
	type image struct{ URL, Caption string }
	var list []image
	for _, it := range items(in.Content, "images") {
		url := str(it, "url")
		if url == "" {
			continue
		}
		list = append(list, image{URL: url, Caption: str(it, "caption")})
	}
	data := struct {
		Heading, Layout string
		Images          []image
	}{
		Heading: str(in.Content, "heading"),
		Layout:  in.Layout,
		Images:  list,
	}
	return r.render("gallery", in.Layout, galleryTmpl, data)
}

const contactTmpl = `{{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
<div{{if eq .Layout "split"}} class="cols"{{end}}>
<ul class="contact">
{{- if .Email}}<li><a href="mailto:{{.Email}}">{{.Email}}</a></li>{{end -}}
{{- if .Phone}}<li>{{.Phone}}</li>{{end -}}
{{- if .Location}}<li class="muted">{{.Location}}</li>{{end -}}
</ul>
{{- if .Links}}
<ul class="links">
{{- range .Links}}<li><a href="{{.URL}}" rel="me">{{.Label}}</a></li>{{end -}}
</ul>
{{- end}}
</div>`

func renderContact(r *Renderer, in Input) (template.HTML, error) {
	type link struct{ Label, URL string }
	var links []link
	for _, it := range items(in.Content, "links") {
		label, url := str(it, "label"), str(it, "url")
		if label == "" || url == "" {
			continue
		}
		links = append(links, link{Label: label, URL: url})
	}
	data := struct {
		Heading, Email, Phone, Location, Layout string
		Links                                   []link
	}{
		Heading:  str(in.Content, "heading"),
		Email:    str(in.Content, "email"),
		Phone:    str(in.Content, "phone"),
		Location: str(in.Content, "location"),
		Layout:   in.Layout,
		Links:    links,
	}
	return r.render("contact", in.Layout, contactTmpl, data)
}

const customTmpl = `<div class="prose{{if eq .Layout "narrow"}} narrow{{end}}">{{markdown .Body}}</div>`

func renderCustom(r *Renderer, in Input) (template.HTML, error) {
	data := struct {
		Body, Layout string
	}{
		Body:   str(in.Content, "body"),
		Layout: in.Layout,
	}
	return r.render("custom", in.Layout, customTmpl, data)
}
