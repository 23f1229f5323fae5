package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/pipeline"
	"github.com/jonathan/resume-preview/internal/rendering"
	"github.com/jonathan/resume-preview/internal/schemas"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace", Summary: "Writes programs."},
		Experiences: []types.Experience{
			{Role: "Engineer", Company: "Engines Ltd"},
			{Role: "Analyst", Company: "Babbage & Co"},
		},
		Skills: types.SkillList{
			types.NewSkill("Go"), types.NewSkill("SQL"), types.NewSkill("Rust"),
			types.NewSkill("Python"), types.NewSkill("C"), types.NewSkill("Ada"),
		},
	}
}

func TestPrintBox_FixedWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 80))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.True(t, strings.HasSuffix(lines[4], "... │"))
}

func TestPrintTheme(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTheme(theme.Resolve(types.ThemeConfig{PrimaryColor: "#be123c", Layout: "modern"}))

	output := buf.String()
	assert.Contains(t, output, "RESOLVED THEME")
	assert.Contains(t, output, "modern")
	assert.Contains(t, output, "rgba(190,18,60,0.15)")
	assert.Contains(t, output, "rgba(190,18,60,0.25)")
}

func TestPrintModel(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintModel(normalize.Normalize(sampleResume()))

	output := buf.String()
	assert.Contains(t, output, "NORMALIZED RESUME")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "✓ experience")
	assert.Contains(t, output, "2 item(s)")
	assert.Contains(t, output, "· projects")
	assert.Contains(t, output, "Go, SQL, Rust, Python, C ... and 1 more")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills(types.SkillList{
		types.NewSkill("Go"),
		types.NewSkill(""),
		types.NewDetailedSkill("PostgreSQL", "expert", "databases"),
		types.NewDetailedSkill("Kubernetes", "", "cloud"),
	})

	output := buf.String()
	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "│ Go ")
	assert.Contains(t, output, "PostgreSQL           expert       databases")
	assert.Contains(t, output, "Kubernetes           -            cloud")
	assert.Equal(t, 7, strings.Count(output, "\n"), "four frame lines and three skills")
}

func TestPrintSkills_NothingToShow(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills(types.SkillList{types.NewSkill("")})
	assert.Empty(t, buf.String())
}

func TestPrintModel_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintModel(nil)
	assert.Empty(t, buf.String())
}

func TestPrintDocument(t *testing.T) {
	doc := rendering.RenderResume(sampleResume(), types.ThemeConfig{Layout: "modern"}, rendering.Options{})

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(doc, rendering.EstimatePages(doc))

	output := buf.String()
	assert.Contains(t, output, "RENDERED DOCUMENT")
	assert.Contains(t, output, "Layout: modern")
	assert.Contains(t, output, "794x1123 px, ~1 page(s)")
	assert.Contains(t, output, "sidebar")
	assert.Contains(t, output, "• skills")
	assert.Contains(t, output, "• experience")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument(nil, 0)
	assert.Empty(t, buf.String())
}

func TestPrintVariants(t *testing.T) {
	variants := []pipeline.Variant{
		{Layout: theme.LayoutClassic, Document: rendering.RenderResume(sampleResume(), types.ThemeConfig{}, rendering.Options{}), Pages: 1},
		{Layout: theme.LayoutMinimal, Pages: 2},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintVariants(variants)

	output := buf.String()
	assert.Contains(t, output, "LAYOUT VARIANTS")
	assert.Contains(t, output, "classic  3 section(s), ~1 page(s)")
	assert.Contains(t, output, "minimal  0 section(s), ~2 page(s)")
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation(nil)
	assert.Contains(t, buf.String(), "✓ valid")

	buf.Reset()
	p.PrintValidation(&schemas.ValidationError{Errors: []schemas.FieldError{
		{Field: "experiences.0.current", Message: "Invalid type. Expected: boolean, given: string"},
	}})
	assert.Contains(t, buf.String(), "✗ 1 problem(s)")
	assert.Contains(t, buf.String(), "experiences.0.current")

	buf.Reset()
	p.PrintValidation(errors.New("file not found"))
	assert.Contains(t, buf.String(), "✗ file not found")
}
