package rendering

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resume-preview/internal/types"
)

var pageShell = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 0; }
* { box-sizing: border-box; }
body { margin: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
h1, h2, p, ul { margin: 0; padding: 0; font-size: inherit; font-weight: inherit; }
ul { list-style: none; }
[data-keep="together"] { break-inside: avoid; page-break-inside: avoid; }
[data-role="bullet"] { position: relative; }
[data-role="bullet"] > .prefix { position: absolute; left: 2px; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type shellData struct {
	Title string
	Body  template.HTML
}

// WriteHTML serializes doc as a standalone A4 HTML page with inline styles.
// All text and attribute values are escaped.
func WriteHTML(w io.Writer, doc *types.Document) error {
	if doc == nil || doc.Root == nil {
		return &RenderError{Message: "document has no root node"}
	}

	var body strings.Builder
	if err := writeNode(&body, doc.Root, nil); err != nil {
		return err
	}

	// The body is assembled from escaped fragments only
	data := shellData{Title: doc.Title, Body: template.HTML(body.String())} //nolint:gosec
	if err := pageShell.Execute(w, data); err != nil {
		return &TemplateError{Message: "failed to execute page template", Cause: err}
	}
	return nil
}

// RenderHTML is WriteHTML into a string
func RenderHTML(doc *types.Document) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeNode(sb *strings.Builder, n *types.Node, parent *types.Node) error {
	if n == nil {
		var role types.NodeRole
		if parent != nil {
			role = parent.Role
		}
		return &RenderError{Message: "nil child node", Role: role}
	}

	if n.Role == types.RoleImage {
		src := SafeImageSource(n.Src)
		if src == "" {
			return nil
		}
		fmt.Fprintf(sb, `<img data-role="image" src="%s" alt=""%s>`, template.HTMLEscapeString(src), styleAttr(n.Style))
		return nil
	}

	tag := elementFor(n, parent)
	sb.WriteString("<" + tag + ` data-role="` + string(n.Role) + `"`)
	if n.Section != "" {
		sb.WriteString(` data-section="` + template.HTMLEscapeString(n.Section) + `"`)
	}
	if n.Style.KeepTogether {
		sb.WriteString(` data-keep="together"`)
	}
	sb.WriteString(styleAttr(n.Style) + ">")

	if n.Prefix != "" {
		if n.Role == types.RoleBullet {
			sb.WriteString(`<span class="prefix">` + template.HTMLEscapeString(n.Prefix) + `</span>`)
		} else {
			sb.WriteString(template.HTMLEscapeString(n.Prefix))
		}
	}
	sb.WriteString(template.HTMLEscapeString(n.Text))

	for _, child := range n.Children {
		if err := writeNode(sb, child, n); err != nil {
			return err
		}
	}

	sb.WriteString("</" + tag + ">")
	return nil
}

// elementFor picks the HTML element for a node given its parent. Text and contact
// nodes stack as blocks unless they sit in a heading or a flex/grid row.
func elementFor(n, parent *types.Node) string {
	var parentRole types.NodeRole
	if parent != nil {
		parentRole = parent.Role
	}

	switch n.Role {
	case types.RoleHeading:
		switch {
		case parentRole == types.RoleSectionTitle:
			return "h2"
		case len(n.Children) == 0 && (parentRole == types.RoleColumn || parentRole == types.RoleSidebar):
			return "h1"
		}
		return "div"
	case types.RoleText, types.RoleContact:
		switch {
		case inline(parent):
			return "span"
		case n.Role == types.RoleText && parentRole == types.RoleSectionBody:
			return "p"
		}
		return "div"
	case types.RoleTag:
		return "span"
	case types.RoleBulletList:
		return "ul"
	case types.RoleBullet:
		return "li"
	case types.RoleHeader:
		return "header"
	case types.RoleMain:
		return "main"
	case types.RoleSidebar:
		return "aside"
	case types.RoleSection:
		return "section"
	}
	return "div"
}

// inline reports whether children of parent flow inline or as row items
func inline(parent *types.Node) bool {
	if parent == nil {
		return false
	}
	return parent.Role == types.RoleHeading || parent.Style.Display == "flex" || parent.Style.Display == "grid"
}

// styleAttr renders a style attribute, or "" for an empty style
func styleAttr(s types.Style) string {
	css := cssDeclarations(s)
	if len(css) == 0 {
		return ""
	}
	return ` style="` + template.HTMLEscapeString(strings.Join(css, ";")) + `"`
}

// cssDeclarations lists the declarations for s in a fixed order
func cssDeclarations(s types.Style) []string {
	var decls []string
	add := func(prop, value string) {
		decls = append(decls, prop+":"+value)
	}

	if v := EscapeCSS(s.FontFamily); v != "" {
		add("font-family", v)
	}
	if s.FontSize > 0 {
		add("font-size", px(s.FontSize))
	}
	if s.FontWeight > 0 {
		add("font-weight", strconv.Itoa(s.FontWeight))
	}
	if s.LineHeight > 0 {
		add("line-height", px(s.LineHeight))
	}
	if s.LetterSpacing != 0 {
		add("letter-spacing", num(s.LetterSpacing)+"em")
	}
	if s.NoWrap {
		add("white-space", "nowrap")
	}

	if v := EscapeCSS(s.Color); v != "" {
		add("color", v)
	}
	if v := EscapeCSS(s.Background); v != "" {
		add("background", v)
	}
	if s.Opacity > 0 {
		add("opacity", num(s.Opacity))
	}

	if s.Width > 0 {
		add("width", px(s.Width))
		add("flex-shrink", "0")
	}
	if s.Height > 0 {
		add("height", px(s.Height))
	}
	if s.MinHeight > 0 {
		add("min-height", px(s.MinHeight))
	}
	if s.Padding != (types.Box{}) {
		add("padding", boxValue(s.Padding))
	}
	if s.Indent > 0 {
		add("padding-left", px(s.Padding.Left+s.Indent))
	}
	if s.Margin != (types.Box{}) {
		add("margin", boxValue(s.Margin))
	}
	if s.Border.Side != "" && s.Border.Width > 0 {
		prop := "border"
		if s.Border.Side == "top" || s.Border.Side == "bottom" {
			prop = "border-" + s.Border.Side
		}
		style := s.Border.Style
		if style != "dashed" {
			style = "solid"
		}
		add(prop, px(s.Border.Width)+" "+style+" "+EscapeCSS(s.Border.Color))
	}
	switch {
	case s.Circular:
		add("border-radius", "50%")
	case s.Radius > 0:
		add("border-radius", px(s.Radius))
	}
	if v := EscapeCSS(s.ObjectFit); v != "" {
		add("object-fit", v)
	}

	switch s.Display {
	case "flex":
		add("display", "flex")
	case "grid":
		add("display", "grid")
		add("grid-template-columns", fmt.Sprintf("repeat(%d, 1fr)", max(s.Columns, 1)))
	}
	if s.Gap > 0 {
		add("gap", px(s.Gap))
	}
	if s.RowGap > 0 {
		add("row-gap", px(s.RowGap))
	}
	if s.Wrap {
		add("flex-wrap", "wrap")
	}
	if v := EscapeCSS(s.Justify); v != "" {
		add("justify-content", v)
	}
	if v := EscapeCSS(s.Align); v != "" {
		add("align-items", v)
	}
	if s.Grow > 0 {
		add("flex", num(s.Grow)+" 1 0")
	}

	return decls
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return num(v) + "px"
}

func boxValue(b types.Box) string {
	return px(b.Top) + " " + px(b.Right) + " " + px(b.Bottom) + " " + px(b.Left)
}
