package rendering

import (
	"strings"

	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

// surface is the background a section is drawn on
type surface int

const (
	onPage surface = iota
	onSidebar
)

// builder carries everything a page assembly needs. Section sub-renderers hang off it
// so the three layouts share one item formatting.
type builder struct {
	model  *normalize.Model
	theme  theme.ResolvedTheme
	labels Labels

	summaryLineHeight float64
}

// renderSection returns the title and body pair for kind, or nil when the section has
// nothing to show
func (b *builder) renderSection(kind normalize.SectionKind, on surface) *types.Node {
	if !normalize.HasContent(kind, b.model) {
		return nil
	}

	var body *types.Node
	switch kind {
	case normalize.SectionSummary:
		body = b.summaryBody()
	case normalize.SectionExperience:
		body = b.experienceBody()
	case normalize.SectionEducation:
		body = b.educationBody()
	case normalize.SectionSkills:
		body = b.skillsBody(on)
	case normalize.SectionCertifications:
		body = b.certificationsBody()
	case normalize.SectionLanguages:
		body = b.languagesBody(on)
	case normalize.SectionProjects:
		body = b.projectsBody()
	default:
		return nil
	}
	body.Role = types.RoleSectionBody
	body.Section = string(kind)

	style := types.Style{Margin: bottom(10)}
	if on == onSidebar {
		style = types.Style{Margin: bottom(12)}
	}
	return &types.Node{
		Role:     types.RoleSection,
		Section:  string(kind),
		Style:    style,
		Children: []*types.Node{b.sectionTitle(kind, on), body},
	}
}

func (b *builder) sectionTitle(kind normalize.SectionKind, on surface) *types.Node {
	label := strings.ToUpper(b.labels.Title(kind))

	if on == onSidebar {
		return &types.Node{
			Role:    types.RoleSectionTitle,
			Section: string(kind),
			Style:   types.Style{Margin: bottom(6)},
			Children: []*types.Node{{
				Role:  types.RoleHeading,
				Text:  label,
				Style: types.Style{FontSize: 8, FontWeight: 700, LetterSpacing: 0.06, Opacity: 0.7},
			}},
		}
	}

	return &types.Node{
		Role:    types.RoleSectionTitle,
		Section: string(kind),
		Style:   types.Style{Display: "flex", Align: "center", Gap: 6, Margin: bottom(6)},
		Children: []*types.Node{
			{
				Role: types.RoleHeading,
				Text: label,
				Style: types.Style{
					FontSize:      8.5,
					FontWeight:    700,
					LetterSpacing: 0.07,
					Color:         b.theme.PrimaryColor,
					NoWrap:        true,
				},
			},
			{
				Role:  types.RoleRule,
				Style: types.Style{Grow: 1, Height: 1, Background: b.theme.Border.String()},
			},
		},
	}
}

func (b *builder) summaryBody() *types.Node {
	paragraph := text(b.model.Summary, types.Style{
		Color:        bodyInk,
		LineHeight:   b.summaryLineHeight,
		KeepTogether: true,
	})
	return &types.Node{Children: []*types.Node{paragraph}}
}

func (b *builder) experienceBody() *types.Node {
	items := b.model.Experiences
	body := &types.Node{Children: make([]*types.Node, 0, len(items))}
	for i, exp := range items {
		body.Children = append(body.Children, b.experienceItem(exp, i == len(items)-1))
	}
	return body
}

func (b *builder) experienceItem(exp normalize.ExperienceItem, last bool) *types.Node {
	heading := &types.Node{
		Role: types.RoleHeading,
		Children: appendIf(nil,
			text(exp.Role, types.Style{FontSize: baseFontSize, FontWeight: 700}),
			b.accent(" · ", exp.Company),
			muted(" — ", exp.Location),
		),
	}
	children := []*types.Node{headlineRow(heading, dateText(exp.DateRange))}

	if len(exp.Bullets) > 0 {
		list := &types.Node{
			Role:     types.RoleBulletList,
			Style:    types.Style{Color: bodyInk, Margin: top(2)},
			Children: make([]*types.Node, 0, len(exp.Bullets)),
		}
		for _, line := range exp.Bullets {
			list.Children = append(list.Children, &types.Node{
				Role:   types.RoleBullet,
				Prefix: "•",
				Text:   line,
				Style:  types.Style{Indent: 10, Margin: bottom(1)},
			})
		}
		children = append(children, list)
	}

	if !last {
		children = append(children, &types.Node{
			Role: types.RoleDivider,
			Style: types.Style{
				Margin: top(6),
				Border: types.Border{Side: "top", Width: 1, Style: "dashed", Color: dividerInk},
			},
		})
	}

	return &types.Node{
		Role:     types.RoleItem,
		Section:  string(normalize.SectionExperience),
		Style:    types.Style{Margin: bottom(7), KeepTogether: true},
		Children: children,
	}
}

func (b *builder) educationBody() *types.Node {
	body := &types.Node{}
	for _, edu := range b.model.Educations {
		heading := &types.Node{
			Role: types.RoleHeading,
			Children: appendIf(nil,
				optional(edu.Title, types.Style{FontWeight: 700}),
				b.accent(" · ", edu.Institution),
			),
		}
		children := []*types.Node{headlineRow(heading, dateText(edu.DateRange))}
		if grade := muted(b.labels.Grade, edu.Grade); grade != nil {
			grade.Style.Margin = top(1)
			children = append(children, grade)
		}
		body.Children = append(body.Children, &types.Node{
			Role:     types.RoleItem,
			Section:  string(normalize.SectionEducation),
			Style:    types.Style{Margin: bottom(5), KeepTogether: true},
			Children: children,
		})
	}
	return body
}

func (b *builder) certificationsBody() *types.Node {
	body := &types.Node{}
	for _, cert := range b.model.Certifications {
		heading := &types.Node{
			Role: types.RoleHeading,
			Children: appendIf(nil,
				optional(cert.Name, types.Style{FontWeight: 600}),
				muted(" — ", cert.Issuer),
			),
		}
		body.Children = append(body.Children, &types.Node{
			Role:    types.RoleItem,
			Section: string(normalize.SectionCertifications),
			Style: types.Style{
				Display:      "flex",
				Justify:      "space-between",
				Align:        "baseline",
				Margin:       bottom(3),
				KeepTogether: true,
			},
			Children: appendIf([]*types.Node{heading}, dateText(cert.Date)),
		})
	}
	return body
}

func (b *builder) projectsBody() *types.Node {
	body := &types.Node{}
	for _, proj := range b.model.Projects {
		row := &types.Node{
			Role:  types.RoleRow,
			Style: types.Style{Display: "flex", Align: "baseline", Gap: 5},
			Children: appendIf(nil,
				optional(proj.Name, types.Style{FontWeight: 700}),
				optional(proj.Link, types.Style{Color: b.theme.PrimaryColor, FontSize: smallFontSize}),
			),
		}
		children := []*types.Node{row}
		if proj.Description != "" {
			children = append(children, text(proj.Description, types.Style{Color: bodyInk, Margin: top(1)}))
		}
		body.Children = append(body.Children, &types.Node{
			Role:     types.RoleItem,
			Section:  string(normalize.SectionProjects),
			Style:    types.Style{Margin: bottom(5), KeepTogether: true},
			Children: children,
		})
	}
	return body
}

func (b *builder) skillsBody(on surface) *types.Node {
	body := &types.Node{Style: types.Style{Display: "flex", Wrap: true, Gap: 4}}
	tagStyle := types.Style{
		FontSize:   smallFontSize,
		FontWeight: 500,
		Color:      b.theme.PrimaryColor,
		Background: b.theme.Light.String(),
		Padding:    box(1, 7, 1, 7),
		Border:     types.Border{Side: "all", Width: 1, Style: "solid", Color: b.theme.Border.String()},
		Radius:     10,
	}
	if on == onSidebar {
		body.Style.Gap = 3
		tagStyle = types.Style{
			FontSize:   smallFontSize,
			Background: onPrimary,
			Padding:    box(1, 6, 1, 6),
			Radius:     8,
		}
	}
	for _, skill := range b.model.Skills {
		body.Children = append(body.Children, &types.Node{Role: types.RoleTag, Text: skill, Style: tagStyle})
	}
	return body
}

func (b *builder) languagesBody(on surface) *types.Node {
	body := &types.Node{}
	for _, lang := range b.model.Languages {
		row := &types.Node{
			Role:    types.RoleItem,
			Section: string(normalize.SectionLanguages),
			Style:   types.Style{Display: "flex", Justify: "space-between", Margin: bottom(2)},
		}
		if on == onSidebar {
			row.Style.FontSize = 8
			row.Children = appendIf(nil,
				optional(lang.Language, types.Style{}),
				optional(lang.Proficiency, types.Style{Opacity: 0.75}),
			)
		} else {
			row.Children = appendIf(nil,
				optional(lang.Language, types.Style{FontWeight: 500}),
				optional(lang.Proficiency, types.Style{Color: mutedInk}),
			)
		}
		body.Children = append(body.Children, row)
	}
	return body
}

// contactLine lists the header contact entries that are present
func (b *builder) contactLine(withWebsite bool, style types.Style) []*types.Node {
	h := b.model.Header
	fields := []struct{ icon, value string }{
		{"✉ ", h.Email},
		{"✆ ", h.Phone},
		{"⌖ ", h.Location},
		{"in ", h.LinkedIn},
	}
	if withWebsite {
		fields = append(fields, struct{ icon, value string }{"🔗 ", h.Website})
	}

	var nodes []*types.Node
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		nodes = append(nodes, &types.Node{Role: types.RoleContact, Prefix: f.icon, Text: f.value, Style: style})
	}
	return nodes
}

func (b *builder) displayName() string {
	if b.model.Header.Name == "" {
		return b.labels.NameFallback
	}
	return b.model.Header.Name
}

// photo returns the image node, or nil when the record has no photo
func (b *builder) photo(size float64, style types.Style) *types.Node {
	if b.model.Header.Photo == "" {
		return nil
	}
	style.Width = size
	style.Height = size
	style.ObjectFit = "cover"
	return &types.Node{Role: types.RoleImage, Src: b.model.Header.Photo, Style: style}
}

func (b *builder) accent(prefix, value string) *types.Node {
	if value == "" {
		return nil
	}
	return &types.Node{
		Role:   types.RoleText,
		Prefix: prefix,
		Text:   value,
		Style:  types.Style{Color: b.theme.PrimaryColor, FontWeight: 600},
	}
}

func muted(prefix, value string) *types.Node {
	if value == "" {
		return nil
	}
	return &types.Node{Role: types.RoleText, Prefix: prefix, Text: value, Style: types.Style{Color: mutedInk}}
}

func optional(value string, style types.Style) *types.Node {
	if value == "" {
		return nil
	}
	return text(value, style)
}

func dateText(value string) *types.Node {
	return optional(value, types.Style{Color: mutedInk, FontSize: smallFontSize, NoWrap: true})
}

// headlineRow puts the item heading on the left and the date range on the right
func headlineRow(heading, date *types.Node) *types.Node {
	return &types.Node{
		Role:     types.RoleRow,
		Style:    types.Style{Display: "flex", Justify: "space-between", Align: "baseline", Gap: 8},
		Children: appendIf([]*types.Node{heading}, date),
	}
}
