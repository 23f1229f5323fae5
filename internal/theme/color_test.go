package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTint_DefaultPrimary(t *testing.T) {
	tint := DeriveTint("#be123c", 0.15)

	assert.Equal(t, uint8(190), tint.R)
	assert.Equal(t, uint8(18), tint.G)
	assert.Equal(t, uint8(60), tint.B)
	assert.Equal(t, 0.15, tint.A)
	assert.Equal(t, "rgba(190,18,60,0.15)", tint.String())
}

func TestDeriveTint_UppercaseHex(t *testing.T) {
	tint := DeriveTint("#0D9488", 0.25)
	assert.Equal(t, "rgba(13,148,136,0.25)", tint.String())
}

func TestDeriveTint_MalformedDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = DeriveTint("#zz", 0.5)
		_ = DeriveTint("", 0.5)
	})
}

func TestParseHex_Valid(t *testing.T) {
	c, err := ParseHex("#1e3a5f")
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 30, G: 58, B: 95, A: 1}, c)
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "be123c", "#be12", "#be123c00", "#gg123c"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHex(input)
			assert.Error(t, err)
		})
	}
}

func TestRGBA_StringFullAlpha(t *testing.T) {
	assert.Equal(t, "rgba(0,0,0,1)", RGBA{A: 1}.String())
}
