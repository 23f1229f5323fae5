package rendering

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-preview/internal/types"
)

// averageGlyphWidth is the assumed advance of one character, as a fraction of the font size
const averageGlyphWidth = 0.5

// flow is the inherited text metrics at a point in the tree
type flow struct {
	fontSize   float64
	lineHeight float64
}

// EstimatePages approximates how many pages the document fills. It measures the tree
// with fixed box dimensions and an average glyph width instead of font metrics, so the
// result is a hint for the preview, not a guarantee for print.
func EstimatePages(doc *types.Document) int {
	if doc == nil || doc.Root == nil {
		return 0
	}
	pageHeight := doc.Page.MinHeight
	if pageHeight <= 0 {
		pageHeight = PageMinHeight
	}
	width := doc.Page.Width
	if width <= 0 {
		width = PageWidth
	}

	height := measure(doc.Root, width, flow{fontSize: baseFontSize, lineHeight: baseLineHeight})
	pages := int(math.Ceil(height / pageHeight))
	if pages < 1 {
		return 1
	}
	return pages
}

// measure returns the outer height of n laid out in the given width
func measure(n *types.Node, width float64, f flow) float64 {
	s := n.Style
	if s.FontSize > 0 {
		f.fontSize = s.FontSize
	}
	if s.LineHeight > 0 {
		f.lineHeight = s.LineHeight
	}
	if s.Width > 0 && s.Width < width {
		width = s.Width
	}
	inner := math.Max(1, width-s.Padding.Left-s.Padding.Right-s.Indent)

	var h float64
	switch {
	case n.Role == types.RoleImage || n.Role == types.RoleRule:
		h = s.Height
	case len(n.Children) == 0:
		h = textHeight(n.Prefix+n.Text, inner, f)
	case s.Display == "grid":
		h = gridHeight(n, inner, f)
	case s.Display == "flex" && s.Wrap:
		h = wrappedHeight(n, inner, f)
	case s.Display == "flex":
		h = rowHeight(n, inner, f)
	default:
		for _, child := range n.Children {
			h += measure(child, inner, f)
		}
	}

	h += s.Padding.Top + s.Padding.Bottom + s.Margin.Top + s.Margin.Bottom
	if s.Border.Side == "all" {
		h += 2 * s.Border.Width
	} else if s.Border.Side != "" {
		h += s.Border.Width
	}
	return h
}

func textHeight(s string, width float64, f flow) float64 {
	if s == "" {
		return 0
	}
	lineHeight := math.Max(f.lineHeight, f.fontSize*1.2)
	perLine := math.Max(1, math.Floor(width/(f.fontSize*averageGlyphWidth)+1e-9))

	var lines float64
	for _, para := range strings.Split(s, "\n") {
		lines += math.Max(1, math.Ceil(float64(utf8.RuneCountInString(para))/perLine))
	}
	return lines * lineHeight
}

// rowHeight lays children side by side: fixed-width children keep their width and the
// rest share what remains
func rowHeight(n *types.Node, width float64, f flow) float64 {
	gaps := n.Style.Gap * float64(len(n.Children)-1)
	remaining := width - gaps
	flexible := 0
	for _, child := range n.Children {
		if child.Style.Width > 0 {
			remaining -= child.Style.Width
		} else {
			flexible++
		}
	}
	share := remaining
	if flexible > 0 {
		share = remaining / float64(flexible)
	}

	var h float64
	for _, child := range n.Children {
		w := share
		if child.Style.Width > 0 {
			w = child.Style.Width
		}
		h = math.Max(h, measure(child, math.Max(1, w), f))
	}
	return h
}

func gridHeight(n *types.Node, width float64, f flow) float64 {
	cols := max(n.Style.Columns, 1)
	colWidth := math.Max(1, (width-n.Style.Gap*float64(cols-1))/float64(cols))

	var total, row float64
	for i, child := range n.Children {
		row = math.Max(row, measure(child, colWidth, f))
		if (i+1)%cols == 0 || i == len(n.Children)-1 {
			total += row
			row = 0
		}
	}
	return total
}

// wrappedHeight flows children left to right, starting a new line when one would overflow
func wrappedHeight(n *types.Node, width float64, f flow) float64 {
	rowGap := n.Style.RowGap
	if rowGap == 0 {
		rowGap = n.Style.Gap
	}

	var total, lineWidth, lineHeight float64
	lines := 0
	for _, child := range n.Children {
		cf := f
		if child.Style.FontSize > 0 {
			cf.fontSize = child.Style.FontSize
		}
		w := float64(utf8.RuneCountInString(child.Prefix+child.Text))*cf.fontSize*averageGlyphWidth +
			child.Style.Padding.Left + child.Style.Padding.Right
		w = math.Min(w, width)

		if lineWidth > 0 && lineWidth+n.Style.Gap+w > width {
			total += lineHeight
			lines++
			lineWidth, lineHeight = 0, 0
		}
		if lineWidth > 0 {
			lineWidth += n.Style.Gap
		}
		lineWidth += w
		lineHeight = math.Max(lineHeight, measure(child, w, f))
	}
	total += lineHeight
	return total + rowGap*float64(lines)
}
