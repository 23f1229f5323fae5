package theme

import (
	"sync"
	"testing"

	"github.com/jonathan/resume-preview/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve_Empty(t *testing.T) {
	resolved := Resolve(types.ThemeConfig{})

	assert.Equal(t, DefaultPrimaryColor, resolved.PrimaryColor)
	assert.Equal(t, DefaultFontFamily, resolved.FontFamily)
	assert.Equal(t, LayoutClassic, resolved.Layout)
	assert.Equal(t, "rgba(190,18,60,0.15)", resolved.Light.String())
	assert.Equal(t, "rgba(190,18,60,0.25)", resolved.Border.String())
}

func TestResolve_LayoutOnlyOverride(t *testing.T) {
	resolved := Resolve(types.ThemeConfig{Layout: "modern"})

	assert.Equal(t, "#be123c", resolved.PrimaryColor)
	assert.Equal(t, "Inter, system-ui, sans-serif", resolved.FontFamily)
	assert.Equal(t, LayoutModern, resolved.Layout)
}

func TestResolve_UnknownLayoutFallsBackToClassic(t *testing.T) {
	resolved := Resolve(types.ThemeConfig{Layout: "futuristic"})
	assert.Equal(t, LayoutClassic, resolved.Layout)
}

func TestResolve_FullOverride(t *testing.T) {
	resolved := Resolve(types.ThemeConfig{
		PrimaryColor: "#166534",
		FontFamily:   "Georgia, Times New Roman, serif",
		Layout:       "minimal",
	})

	assert.Equal(t, "#166534", resolved.PrimaryColor)
	assert.Equal(t, "Georgia, Times New Roman, serif", resolved.FontFamily)
	assert.Equal(t, LayoutMinimal, resolved.Layout)
	assert.Equal(t, "rgba(22,101,52,0.15)", resolved.Light.String())
}

func TestResolve_InvalidColorFallsBackToDefault(t *testing.T) {
	resolved := Resolve(types.ThemeConfig{PrimaryColor: "red"})
	assert.Equal(t, DefaultPrimaryColor, resolved.PrimaryColor)
}

func TestResolveWith_CustomDefaults(t *testing.T) {
	defaults := types.ThemeConfig{PrimaryColor: "#334155", FontFamily: "Roboto", Layout: "minimal"}
	resolved := ResolveWith(types.ThemeConfig{Layout: "modern"}, defaults)

	assert.Equal(t, "#334155", resolved.PrimaryColor)
	assert.Equal(t, "Roboto", resolved.FontFamily)
	assert.Equal(t, LayoutModern, resolved.Layout)
}

func TestResolve_DoesNotMutateDefaults(t *testing.T) {
	_ = Resolve(types.ThemeConfig{PrimaryColor: "#000000", Layout: "modern"})
	assert.Equal(t, DefaultPrimaryColor, DefaultConfig().PrimaryColor)
	assert.Equal(t, string(LayoutClassic), DefaultConfig().Layout)
}

func TestParseLayout(t *testing.T) {
	assert.Equal(t, LayoutClassic, ParseLayout("classic"))
	assert.Equal(t, LayoutModern, ParseLayout("modern"))
	assert.Equal(t, LayoutMinimal, ParseLayout("minimal"))
	assert.Equal(t, LayoutClassic, ParseLayout(""))
	assert.Equal(t, LayoutClassic, ParseLayout("Modern"))
}

func TestResolvedTheme_Config(t *testing.T) {
	cfg := Resolve(types.ThemeConfig{Layout: "minimal"}).Config()
	assert.Equal(t, types.ThemeConfig{PrimaryColor: "#be123c", FontFamily: DefaultFontFamily, Layout: "minimal"}, cfg)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(types.ThemeConfig{}))
	assert.NoError(t, Validate(types.ThemeConfig{PrimaryColor: "#be123c", Layout: "futuristic"}))
	assert.Error(t, Validate(types.ThemeConfig{PrimaryColor: "#fff"}))
	assert.Error(t, Validate(types.ThemeConfig{PrimaryColor: "be123c"}))
	assert.Error(t, Validate(types.ThemeConfig{PrimaryColor: "#be123cff"}))
}

func TestValidate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			color := "#be123c"
			if i%2 == 1 {
				color = "red"
			}
			errs[i] = Validate(types.ThemeConfig{PrimaryColor: color})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if i%2 == 1 {
			assert.Error(t, err, i)
		} else {
			assert.NoError(t, err, i)
		}
	}
}

func TestPresets_AreValidColors(t *testing.T) {
	for _, c := range PresetColors {
		_, err := ParseHex(c.Value)
		assert.NoError(t, err, c.Label)
	}
	assert.Len(t, LayoutOptions, len(Layouts))
}
