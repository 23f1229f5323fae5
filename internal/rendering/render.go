// Package rendering composes the normalized resume model into a themed document tree
// and serializes that tree for presentation.
package rendering

import (
	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

// Options tunes a render. The zero value renders with English labels; a record's own
// section labels are applied on top.
type Options struct {
	Labels Labels
}

// pageAssembler builds the root page node for one layout variant
type pageAssembler func(b *builder) *types.Node

var assemblers = map[theme.Layout]pageAssembler{
	theme.LayoutClassic: classicPage,
	theme.LayoutModern:  modernPage,
	theme.LayoutMinimal: minimalPage,
}

// Render lays out m under the resolved theme. It is pure: the same inputs always
// produce the same tree, and neither input is modified. A nil model renders an empty page.
func Render(m *normalize.Model, t theme.ResolvedTheme, opts Options) *types.Document {
	if m == nil {
		m = &normalize.Model{}
	}
	assemble, ok := assemblers[t.Layout]
	if !ok {
		t.Layout = theme.LayoutClassic
		assemble = classicPage
	}

	b := &builder{
		model:             m,
		theme:             t,
		labels:            opts.Labels.withDefaults().Overlay(m.SectionLabels),
		summaryLineHeight: 16,
	}

	return &types.Document{
		Title:        b.displayName(),
		Layout:       string(t.Layout),
		PrimaryColor: t.PrimaryColor,
		FontFamily:   t.FontFamily,
		Page:         types.PageBox{Width: PageWidth, MinHeight: PageMinHeight},
		Root:         assemble(b),
	}
}

// RenderResume resolves the partial theme, normalizes the record and renders it
func RenderResume(r *types.Resume, partial types.ThemeConfig, opts Options) *types.Document {
	return Render(normalize.Normalize(r), theme.Resolve(partial), opts)
}

// ThemeFor picks the theme a record should render with: an explicit override wins over
// the theme stored on the record.
func ThemeFor(r *types.Resume, override *types.ThemeConfig) types.ThemeConfig {
	if override != nil {
		return *override
	}
	if r != nil && r.Theme != nil {
		return *r.Theme
	}
	return types.ThemeConfig{}
}

// pageNode is the shared page shell every layout starts from
func (b *builder) pageNode() *types.Node {
	return &types.Node{
		Role: types.RolePage,
		Style: types.Style{
			Width:      PageWidth,
			MinHeight:  PageMinHeight,
			FontFamily: b.theme.FontFamily,
			FontSize:   baseFontSize,
			LineHeight: baseLineHeight,
			Color:      inkColor,
			Background: white,
		},
	}
}
