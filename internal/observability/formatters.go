// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/pipeline"
	"github.com/jonathan/resume-preview/internal/schemas"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		runes := []rune(s)
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintTheme outputs the resolved theme, including the derived tints.
func (p *Printer) PrintTheme(t theme.ResolvedTheme) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Layout:  %s\n", t.Layout)
	fmt.Fprintf(&sb, "Primary: %s\n", t.PrimaryColor)
	fmt.Fprintf(&sb, "Light:   %s\n", t.Light)
	fmt.Fprintf(&sb, "Border:  %s\n", t.Border)
	fmt.Fprintf(&sb, "Font:    %s", t.FontFamily)

	p.printBox("RESOLVED THEME", sb.String())
}

// PrintModel outputs which sections have content and how many entries each holds.
func (p *Printer) PrintModel(m *normalize.Model) {
	if m == nil {
		return
	}

	var sb strings.Builder
	name := m.Header.Name
	if name == "" {
		name = "(no name)"
	}
	fmt.Fprintf(&sb, "Name: %s\n\n", name)

	for _, kind := range normalize.Sections {
		mark := "·"
		if normalize.HasContent(kind, m) {
			mark = "✓"
		}
		fmt.Fprintf(&sb, "%s %-15s %s\n", mark, kind, sectionSize(kind, m))
	}

	if len(m.Skills) > 0 {
		count := min(len(m.Skills), maxItemsToShow)
		sb.WriteString("\nSkills: " + strings.Join(m.Skills[:count], ", "))
		if len(m.Skills) > maxItemsToShow {
			fmt.Fprintf(&sb, " ... and %d more", len(m.Skills)-maxItemsToShow)
		}
		sb.WriteString("\n")
	}

	p.printBox("NORMALIZED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills lists the record's skills with the level and category of detailed entries.
func (p *Printer) PrintSkills(skills types.SkillList) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	shown := 0
	for _, s := range skills {
		if s.IsEmpty() {
			continue
		}
		if shown == maxItemsToShow {
			sb.WriteString("... and more\n")
			break
		}
		shown++
		if !s.IsDetailed() {
			fmt.Fprintf(&sb, "%s\n", s.DisplayName())
			continue
		}
		fmt.Fprintf(&sb, "%s %-12s %s\n", pad(s.DisplayName(), 20), dash(s.Level()), dash(s.Category()))
	}
	if shown == 0 {
		return
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sectionSize(kind normalize.SectionKind, m *normalize.Model) string {
	var n int
	switch kind {
	case normalize.SectionSummary:
		if m.Summary == "" {
			return ""
		}
		return fmt.Sprintf("%d chars", utf8.RuneCountInString(m.Summary))
	case normalize.SectionExperience:
		n = len(m.Experiences)
	case normalize.SectionEducation:
		n = len(m.Educations)
	case normalize.SectionSkills:
		n = len(m.Skills)
	case normalize.SectionCertifications:
		n = len(m.Certifications)
	case normalize.SectionLanguages:
		n = len(m.Languages)
	case normalize.SectionProjects:
		n = len(m.Projects)
	}
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d item(s)", n)
}

// PrintDocument outputs an outline of the rendered tree: the regions of the page and
// the sections inside each, in document order.
func (p *Printer) PrintDocument(doc *types.Document, pages int) {
	if doc == nil || doc.Root == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title:  %s\n", doc.Title)
	fmt.Fprintf(&sb, "Layout: %s   Color: %s\n", doc.Layout, doc.PrimaryColor)
	fmt.Fprintf(&sb, "Page:   %gx%g px, ~%d page(s)\n\n", doc.Page.Width, doc.Page.MinHeight, pages)

	for _, region := range doc.Root.Children {
		sections := region.Find(func(n *types.Node) bool { return n.Role == types.RoleSection })
		fmt.Fprintf(&sb, "%s\n", region.Role)
		for _, section := range sections {
			items := 0
			if len(section.Children) == 2 {
				items = len(section.Children[1].Children)
			}
			fmt.Fprintf(&sb, "  • %-15s %d\n", section.Section, items)
		}
	}

	var nodes int
	doc.Root.Walk(func(*types.Node) { nodes++ })
	fmt.Fprintf(&sb, "\n%d nodes", nodes)

	p.printBox("RENDERED DOCUMENT", sb.String())
}

// PrintVariants outputs one line per rendered layout variant.
func (p *Printer) PrintVariants(variants []pipeline.Variant) {
	if len(variants) == 0 {
		return
	}

	var sb strings.Builder
	for _, v := range variants {
		sections := 0
		if v.Document != nil {
			sections = len(v.Document.Root.Find(func(n *types.Node) bool { return n.Role == types.RoleSection }))
		}
		fmt.Fprintf(&sb, "%-8s %d section(s), ~%d page(s)\n", v.Layout, sections, v.Pages)
	}

	p.printBox("LAYOUT VARIANTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs schema validation failures field by field.
// Other errors are printed as a single line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(err error) {
	if err == nil {
		p.printBox("SCHEMA VALIDATION", "✓ valid")
		return
	}

	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) {
		p.printBox("SCHEMA VALIDATION", "✗ "+err.Error())
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "✗ %d problem(s)\n\n", len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fmt.Fprintf(&sb, "%s\n    %s\n", fe.Field, fe.Message)
	}
	p.printBox("SCHEMA VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}
