package rendering

import (
	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/types"
)

// minimalPage: uncolored page with a ruled header and a two-column skills/languages grid
func minimalPage(b *builder) *types.Node {
	page := b.pageNode()
	page.Style.Padding = box(24, 28, 20, 28)

	body := &types.Node{Role: types.RoleMain}
	body.Children = appendIf(body.Children,
		b.renderSection(normalize.SectionSummary, onPage),
		b.renderSection(normalize.SectionExperience, onPage),
		b.renderSection(normalize.SectionEducation, onPage),
		b.minimalGrid(),
		b.renderSection(normalize.SectionCertifications, onPage),
		b.renderSection(normalize.SectionProjects, onPage),
	)

	page.Children = []*types.Node{b.minimalHeader(), body}
	return page
}

func (b *builder) minimalHeader() *types.Node {
	identity := &types.Node{
		Role: types.RoleColumn,
		Children: appendIf([]*types.Node{{
			Role:  types.RoleHeading,
			Text:  b.displayName(),
			Style: types.Style{FontSize: 20, FontWeight: 800, Color: nameInk, LineHeight: 24},
		}}, optional(b.model.Header.Title, types.Style{
			FontSize:   10,
			FontWeight: 600,
			Color:      b.theme.PrimaryColor,
			Margin:     top(2),
		})),
	}

	if contacts := b.contactLine(false, types.Style{}); len(contacts) > 0 {
		identity.Children = append(identity.Children, &types.Node{
			Role: types.RoleRow,
			Style: types.Style{
				Display:  "flex",
				Wrap:     true,
				Gap:      12,
				Margin:   top(6),
				FontSize: smallFontSize,
				Color:    mutedInk,
			},
			Children: contacts,
		})
	}

	return &types.Node{
		Role: types.RoleHeader,
		Style: types.Style{
			Display: "flex",
			Justify: "space-between",
			Align:   "flex-start",
			Padding: types.Box{Bottom: 10},
			Margin:  bottom(12),
			Border:  types.Border{Side: "bottom", Width: 2, Style: "solid", Color: b.theme.PrimaryColor},
		},
		Children: appendIf([]*types.Node{identity}, b.photo(52, types.Style{Radius: 4})),
	}
}

// minimalGrid keeps both cells in place when either section has content, so a lone
// languages section stays in the right-hand column
func (b *builder) minimalGrid() *types.Node {
	skills := b.renderSection(normalize.SectionSkills, onPage)
	languages := b.renderSection(normalize.SectionLanguages, onPage)
	if skills == nil && languages == nil {
		return nil
	}
	return &types.Node{
		Role:  types.RoleGrid,
		Style: types.Style{Display: "grid", Columns: 2, Gap: 14},
		Children: []*types.Node{
			{Role: types.RoleColumn, Section: string(normalize.SectionSkills), Children: appendIf(nil, skills)},
			{Role: types.RoleColumn, Section: string(normalize.SectionLanguages), Children: appendIf(nil, languages)},
		},
	}
}
