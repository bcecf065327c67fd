// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// defaults.go holds the built-in default token set: a neutral light theme
// used whenever a portfolio has no theme assigned. Every token name the
// renderer can ask for is defined here.
package theme

// defaultVars is the complete default token table. Resolve starts from a
// copy of it, so a resolved set always covers these names.
var defaultVars = map[string]string{
	// Palette
	"color-primary":        "#2563eb",
	"color-secondary":      "#475569",
	"color-accent":         "#f59e0b",
	"color-bg":             "#ffffff",
	"color-bg-alt":         "#f8fafc",
	"color-bg-elevated":    "#f1f5f9",
	"color-text":           "#0f172a",
	"color-text-secondary": "#334155",
	"color-text-muted":     "#64748b",
	"color-text-inverse":   "#ffffff",
	"color-success":        "#16a34a",
	"color-warning":        "#d97706",
	"color-error":          "#dc2626",
	"color-info":           "#0284c7",
	"color-border":         "#e2e8f0",
	"color-divider":        "#f1f5f9",

	// Typography
	"font-heading": `"Inter", system-ui, sans-serif`,
	"font-body":    `"Inter", system-ui, sans-serif`,
	"font-mono":    `"JetBrains Mono", monospace`,

	"font-size-xs":  "0.75rem",
	"font-size-sm":  "0.875rem",
	"font-size-md":  "1rem",
	"font-size-lg":  "1.125rem",
	"font-size-xl":  "1.25rem",
	"font-size-2xl": "1.5rem",
	"font-size-3xl": "1.875rem",
	"font-size-4xl": "2.25rem",
	"font-size-5xl": "3rem",

	"font-weight-normal":   "400",
	"font-weight-medium":   "500",
	"font-weight-semibold": "600",
	"font-weight-bold":     "700",

	"line-height-tight":   "1.25",
	"line-height-normal":  "1.5",
	"line-height-relaxed": "1.625",
	"line-height-loose":   "2",

	// Spacing scale
	"space-xs":  "0.25rem",
	"space-sm":  "0.5rem",
	"space-md":  "1rem",
	"space-lg":  "2rem",
	"space-xl":  "4rem",
	"space-2xl": "6rem",

	// Borders and radii
	"radius-none": "0",
	"radius-sm":   "0.125rem",
	"radius-md":   "0.375rem",
	"radius-lg":   "0.75rem",
	"radius-full": "9999px",

	"border-thin":  "1px",
	"border-thick": "2px",

	// Shadows
	"shadow-sm": "0 1px 2px rgba(15, 23, 42, 0.05)",
	"shadow-md": "0 4px 6px rgba(15, 23, 42, 0.1)",
	"shadow-lg": "0 10px 15px rgba(15, 23, 42, 0.1)",

	// Animation
	"duration-fast":   "150ms",
	"duration-normal": "300ms",
	"duration-slow":   "500ms",
	"easing-default":  "ease-in-out",
	"easing-in":       "ease-in",
	"easing-out":      "ease-out",

	// Breakpoints
	"breakpoint-sm": "640px",
	"breakpoint-md": "768px",
	"breakpoint-lg": "1024px",
	"breakpoint-xl": "1280px",
}
