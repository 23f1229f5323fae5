package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-preview/internal/schemas"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

func TestThemeFor(t *testing.T) {
	stored := &types.Resume{Theme: &types.ThemeConfig{PrimaryColor: "#166534", Layout: "modern"}}
	fallback := types.ThemeConfig{PrimaryColor: "#0369a1", FontFamily: "Georgia", Layout: "minimal"}

	tests := []struct {
		name     string
		resume   *types.Resume
		flags    types.ThemeConfig
		expected types.ThemeConfig
	}{
		{
			name:     "stored theme wins over fallback",
			resume:   stored,
			expected: types.ThemeConfig{PrimaryColor: "#166534", Layout: "modern"},
		},
		{
			name:     "fallback when record has no theme",
			resume:   &types.Resume{},
			expected: fallback,
		},
		{
			name:     "nil record uses fallback",
			resume:   nil,
			expected: fallback,
		},
		{
			name:     "flags override key by key",
			resume:   stored,
			flags:    types.ThemeConfig{Layout: "classic"},
			expected: types.ThemeConfig{PrimaryColor: "#166534", Layout: "classic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := themeFor(tt.resume, fallback, tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestThemeFor_RejectsBadColorFlag(t *testing.T) {
	_, err := themeFor(&types.Resume{}, types.ThemeConfig{}, types.ThemeConfig{PrimaryColor: "red"})
	assert.Error(t, err)
}

func TestThemeFor_DoesNotModifyRecord(t *testing.T) {
	r := &types.Resume{Theme: &types.ThemeConfig{Layout: "modern"}}
	_, err := themeFor(r, types.ThemeConfig{}, types.ThemeConfig{Layout: "minimal"})
	require.NoError(t, err)
	assert.Equal(t, "modern", r.Theme.Layout)
}

func TestReadResume(t *testing.T) {
	path := writeFile(t, "ada.json", sampleResume)

	resume, err := readResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", resume.PersonalInfo.Name)
	require.NotNil(t, resume.Theme)
	assert.Equal(t, "modern", resume.Theme.Layout)
	require.Len(t, resume.Skills, 2)
	assert.Equal(t, "Go", resume.Skills[0].DisplayName())
}

func TestReadResume_SchemaFailure(t *testing.T) {
	path := writeFile(t, "bad.json", `{"experiences": "not a list"}`)

	_, err := readResume(path)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestReadResume_MissingFile(t *testing.T) {
	_, err := readResume(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.html")

	require.NoError(t, writeOutput(path, []byte("<html></html>")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "ada-lovelace", fileStem("Ada Lovelace", "resume"))
	assert.Equal(t, "j-r-r-tolkien", fileStem("  J. R. R. Tolkien ", "resume"))
	assert.Equal(t, "resume", fileStem("", "resume"))
	assert.Equal(t, "resume", fileStem("李雷", "resume"))
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		flag, out, expected string
	}{
		{"", "-", "html"},
		{"", "out/ada.json", "json"},
		{"", "out/ada.JSON", "json"},
		{"", "out/ada.html", "html"},
		{"json", "out/ada.html", "json"},
		{"HTML", "-", "html"},
	}
	for _, tt := range tests {
		got, err := outputFormat(tt.flag, tt.out)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "flag=%q out=%q", tt.flag, tt.out)
	}

	_, err := outputFormat("pdf", "-")
	assert.Error(t, err)
}

func TestParseLayouts(t *testing.T) {
	layouts, err := parseLayouts([]string{"minimal", "classic"})
	require.NoError(t, err)
	assert.Equal(t, []theme.Layout{theme.LayoutMinimal, theme.LayoutClassic}, layouts)

	layouts, err = parseLayouts(nil)
	require.NoError(t, err)
	assert.Empty(t, layouts)

	_, err = parseLayouts([]string{"modern", "fancy"})
	assert.ErrorContains(t, err, `"fancy"`)
}

func TestValidateEmbedded(t *testing.T) {
	assert.NoError(t, validateEmbedded("resume", writeFile(t, "ada.json", sampleResume)))
	assert.NoError(t, validateEmbedded("theme", writeFile(t, "theme.json", `{"primaryColor": "#be123c"}`)))

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, validateEmbedded("theme", writeFile(t, "theme.json", `{"primaryColor": "#fff"}`)), &validationErr)

	assert.ErrorContains(t, validateEmbedded("job", writeFile(t, "x.json", `{}`)), "unknown schema kind")
}

func TestFileItems(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "ada.json")
	second := filepath.Join(dir, "grace.json")
	require.NoError(t, os.WriteFile(first, []byte(sampleResume), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(`{"personal_info": {"name": "Grace"}}`), 0o644))

	items, err := fileItems([]string{first, second})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ada", items[0].ID)
	assert.Equal(t, "grace", items[1].ID)
	assert.Equal(t, "Grace", items[1].Resume.PersonalInfo.Name)
}

func TestFileItems_DuplicateNames(t *testing.T) {
	first := writeFile(t, "ada.json", sampleResume)
	second := writeFile(t, "ada.json", sampleResume)

	_, err := fileItems([]string{first, second})
	assert.ErrorContains(t, err, "also named ada")
}

func TestRenderCommand_HTML(t *testing.T) {
	binaryPath := getBinaryPath(t)
	input := writeFile(t, "ada.json", sampleResume)
	output := filepath.Join(t.TempDir(), "ada.html")

	cmd := exec.Command(binaryPath, "render", "--in", input, "--out", output)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "Rendered modern layout")

	html, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Ada Lovelace</title>")
	assert.Contains(t, string(html), "<aside")
}

func TestRenderCommand_JSONWithLayoutFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)
	input := writeFile(t, "ada.json", sampleResume)

	cmd := exec.Command(binaryPath, "render", "--in", input, "--format", "json", "--layout", "minimal", "--labels", "de")
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"layout": "minimal"`)
	assert.Contains(t, string(out), "BERUFSERFAHRUNG")
}

func TestRenderCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render")
	out, err := cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(out), "either --in or --resume-id must be provided")
}

func TestValidateCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	out, err := exec.Command(binaryPath, "validate", "--json", writeFile(t, "ada.json", sampleResume)).CombinedOutput()
	assert.NoError(t, err, string(out))
	assert.Contains(t, string(out), "Validation passed")

	cmd := exec.Command(binaryPath, "validate", "--json", writeFile(t, "bad.json", `{"projects": {}}`))
	out, err = cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(out), "Validation failed")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode(), "should exit with code 1 on validation failure")
	}
}

func TestVariantsCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outDir := t.TempDir()

	cmd := exec.Command(binaryPath, "variants", "--in", writeFile(t, "ada.json", sampleResume), "--out-dir", outDir)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	for _, layout := range []string{"classic", "modern", "minimal"} {
		_, err := os.Stat(filepath.Join(outDir, layout+".html"))
		assert.NoError(t, err, layout)
	}
	assert.True(t, strings.Contains(string(out), "LAYOUT VARIANTS"))
}
