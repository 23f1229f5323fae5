package rendering

import "github.com/jonathan/resume-preview/internal/types"

// Page box, A4 at 96 dpi
const (
	PageWidth     = 794
	PageMinHeight = 1123
)

const (
	baseFontSize   = 9
	baseLineHeight = 14
	smallFontSize  = 7.5
	sidebarWidth   = 220

	inkColor    = "#1a1a1a"
	nameInk     = "#111"
	bodyInk     = "#374151"
	mutedInk    = "#6b7280"
	dividerInk  = "#f3f4f6"
	white       = "#fff"
	onPrimary   = "rgba(255,255,255,0.2)"
	photoBorder = "rgba(255,255,255,0.4)"
	sidebarRule = "rgba(255,255,255,0.25)"
)

func box(top, right, bottom, left float64) types.Box {
	return types.Box{Top: top, Right: right, Bottom: bottom, Left: left}
}

func bottom(v float64) types.Box { return types.Box{Bottom: v} }

func top(v float64) types.Box { return types.Box{Top: v} }

func text(s string, style types.Style) *types.Node {
	return &types.Node{Role: types.RoleText, Text: s, Style: style}
}

// appendIf adds the nodes that are not nil
func appendIf(children []*types.Node, nodes ...*types.Node) []*types.Node {
	for _, n := range nodes {
		if n != nil {
			children = append(children, n)
		}
	}
	return children
}
