package rendering

import (
	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/types"
)

// modernPage: colored sidebar with identity, contact, skills and languages beside a main
// region with the long-form sections. There is no header band.
func modernPage(b *builder) *types.Node {
	b.summaryLineHeight = 15

	page := b.pageNode()
	page.Style.Display = "flex"
	page.Children = []*types.Node{b.modernSidebar(), b.modernMain()}
	return page
}

func (b *builder) modernSidebar() *types.Node {
	sidebar := &types.Node{
		Role: types.RoleSidebar,
		Style: types.Style{
			Width:      sidebarWidth,
			Background: b.theme.PrimaryColor,
			Color:      white,
			Padding:    box(20, 14, 20, 14),
		},
	}

	sidebar.Children = appendIf(sidebar.Children,
		b.photo(72, types.Style{
			Circular: true,
			Margin:   bottom(12),
			Border:   types.Border{Side: "all", Width: 2, Style: "solid", Color: photoBorder},
		}),
		&types.Node{
			Role:  types.RoleHeading,
			Text:  b.displayName(),
			Style: types.Style{FontSize: 14, FontWeight: 800, LineHeight: 17, Margin: bottom(3)},
		},
		optional(b.model.Header.Title, types.Style{FontSize: 8.5, Opacity: 0.8, Margin: bottom(12)}),
	)

	if contacts := b.contactLine(false, types.Style{Opacity: 0.88, Margin: bottom(3)}); len(contacts) > 0 {
		sidebar.Children = append(sidebar.Children, &types.Node{
			Role: types.RoleColumn,
			Style: types.Style{
				FontSize: smallFontSize,
				Padding:  types.Box{Top: 10},
				Margin:   bottom(10),
				Border:   types.Border{Side: "top", Width: 1, Style: "solid", Color: sidebarRule},
			},
			Children: contacts,
		})
	}

	sidebar.Children = appendIf(sidebar.Children,
		b.renderSection(normalize.SectionSkills, onSidebar),
		b.renderSection(normalize.SectionLanguages, onSidebar),
	)
	return sidebar
}

func (b *builder) modernMain() *types.Node {
	main := &types.Node{Role: types.RoleMain, Style: types.Style{Grow: 1, Padding: box(18, 18, 16, 16)}}
	main.Children = appendIf(main.Children,
		b.renderSection(normalize.SectionSummary, onPage),
		b.renderSection(normalize.SectionExperience, onPage),
		b.renderSection(normalize.SectionEducation, onPage),
		b.renderSection(normalize.SectionCertifications, onPage),
		b.renderSection(normalize.SectionProjects, onPage),
	)
	return main
}
