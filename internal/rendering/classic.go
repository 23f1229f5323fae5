package rendering

import (
	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/types"
)

// classicPage: colored header band over a single-column body, with skills and
// languages side by side
func classicPage(b *builder) *types.Node {
	page := b.pageNode()
	page.Children = []*types.Node{b.classicHeader(), b.classicBody()}
	return page
}

func (b *builder) classicHeader() *types.Node {
	identity := &types.Node{
		Role: types.RoleColumn,
		Children: appendIf([]*types.Node{{
			Role:  types.RoleHeading,
			Text:  b.displayName(),
			Style: types.Style{FontSize: 20, FontWeight: 800, LetterSpacing: -0.02, LineHeight: 24},
		}}, optional(b.model.Header.Title, types.Style{FontSize: 10, Opacity: 0.85, Margin: top(3)})),
	}

	band := &types.Node{
		Role:  types.RoleRow,
		Style: types.Style{Display: "flex", Justify: "space-between", Align: "flex-start"},
		Children: appendIf([]*types.Node{identity}, b.photo(54, types.Style{
			Circular: true,
			Border:   types.Border{Side: "all", Width: 2, Style: "solid", Color: photoBorder},
		})),
	}

	header := &types.Node{
		Role: types.RoleHeader,
		Style: types.Style{
			Background: b.theme.PrimaryColor,
			Color:      white,
			Padding:    box(18, 24, 14, 24),
		},
		Children: []*types.Node{band},
	}

	if contacts := b.contactLine(true, types.Style{}); len(contacts) > 0 {
		header.Children = append(header.Children, &types.Node{
			Role: types.RoleRow,
			Style: types.Style{
				Display:  "flex",
				Wrap:     true,
				Gap:      14,
				RowGap:   4,
				Margin:   top(8),
				FontSize: smallFontSize,
				Opacity:  0.9,
			},
			Children: contacts,
		})
	}
	return header
}

func (b *builder) classicBody() *types.Node {
	body := &types.Node{Role: types.RoleMain, Style: types.Style{Padding: box(14, 24, 20, 24)}}
	body.Children = appendIf(body.Children,
		b.renderSection(normalize.SectionSummary, onPage),
		b.renderSection(normalize.SectionExperience, onPage),
		b.renderSection(normalize.SectionEducation, onPage),
		b.classicSkillsRow(),
		b.renderSection(normalize.SectionCertifications, onPage),
		b.renderSection(normalize.SectionProjects, onPage),
	)
	return body
}

// classicSkillsRow holds only the cells that have content, and is absent when neither does
func (b *builder) classicSkillsRow() *types.Node {
	var cells []*types.Node
	for _, kind := range []normalize.SectionKind{normalize.SectionSkills, normalize.SectionLanguages} {
		if section := b.renderSection(kind, onPage); section != nil {
			cells = append(cells, &types.Node{Role: types.RoleColumn, Section: string(kind), Children: []*types.Node{section}})
		}
	}
	if len(cells) == 0 {
		return nil
	}
	return &types.Node{
		Role:     types.RoleGrid,
		Style:    types.Style{Display: "grid", Columns: 2, Gap: 14},
		Children: cells,
	}
}
