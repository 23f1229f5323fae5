// Package theme resolves partial theme overrides into a complete, render-ready theme.
package theme

import "github.com/jonathan/resume-preview/internal/types"

// Layout is one of the three page arrangements
type Layout string

// Supported layouts
const (
	LayoutClassic Layout = "classic"
	LayoutModern  Layout = "modern"
	LayoutMinimal Layout = "minimal"
)

// Layouts lists every supported layout in picker order
var Layouts = []Layout{LayoutClassic, LayoutModern, LayoutMinimal}

// Theme defaults
const (
	DefaultPrimaryColor = "#be123c"
	DefaultFontFamily   = "Inter, system-ui, sans-serif"
	DefaultLayout       = LayoutClassic
)

// Tint opacities derived from the primary color
const (
	LightAlpha  = 0.15
	BorderAlpha = 0.25
)

// ResolvedTheme is a complete theme with its derived tints. It is computed per render and never cached.
type ResolvedTheme struct {
	PrimaryColor string
	Light        RGBA
	Border       RGBA
	FontFamily   string
	Layout       Layout
}

// DefaultConfig returns the default theme as a fresh value
func DefaultConfig() types.ThemeConfig {
	return types.ThemeConfig{
		PrimaryColor: DefaultPrimaryColor,
		FontFamily:   DefaultFontFamily,
		Layout:       string(DefaultLayout),
	}
}

// ParseLayout maps a layout key to a Layout. Unknown keys become LayoutClassic.
func ParseLayout(key string) Layout {
	switch Layout(key) {
	case LayoutModern:
		return LayoutModern
	case LayoutMinimal:
		return LayoutMinimal
	default:
		return LayoutClassic
	}
}

// Resolve merges partial over DefaultConfig
func Resolve(partial types.ThemeConfig) ResolvedTheme {
	return ResolveWith(partial, DefaultConfig())
}

// ResolveWith merges partial over defaults key by key. Absent keys and colors that are not
// #RRGGBB take the default; unknown layouts become classic. It never fails.
func ResolveWith(partial, defaults types.ThemeConfig) ResolvedTheme {
	primary := defaults.PrimaryColor
	if partial.PrimaryColor != "" {
		if _, err := ParseHex(partial.PrimaryColor); err == nil {
			primary = partial.PrimaryColor
		}
	}

	font := defaults.FontFamily
	if partial.FontFamily != "" {
		font = partial.FontFamily
	}

	layout := defaults.Layout
	if partial.Layout != "" {
		layout = partial.Layout
	}

	return ResolvedTheme{
		PrimaryColor: primary,
		Light:        DeriveTint(primary, LightAlpha),
		Border:       DeriveTint(primary, BorderAlpha),
		FontFamily:   font,
		Layout:       ParseLayout(layout),
	}
}

// Config converts the resolved theme back into a full ThemeConfig
func (t ResolvedTheme) Config() types.ThemeConfig {
	return types.ThemeConfig{
		PrimaryColor: t.PrimaryColor,
		FontFamily:   t.FontFamily,
		Layout:       string(t.Layout),
	}
}
