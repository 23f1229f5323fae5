// Package theme resolves partial theme overrides into a complete, render-ready theme.
package theme

import (
	"fmt"
	"strconv"
)

// RGBA is an 8-bit color channel triple with a fractional alpha
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float64
}

// String renders the color as a CSS rgba() value, e.g. "rgba(190,18,60,0.15)"
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// ParseHex decodes a #RRGGBB color with full alpha.
// This is the checked form for validating collaborators; the renderer uses DeriveTint.
func ParseHex(hex string) (RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGBA{}, fmt.Errorf("invalid hex color %q: want #RRGGBB", hex)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		channels[i] = uint8(v)
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: 1}, nil
}

// DeriveTint decodes hex and re-emits it at the given alpha.
//
// Precondition: hex is a well-formed #RRGGBB string. The result for malformed input is
// unspecified (unreadable channels decode as zero); callers validate upstream with ParseHex.
func DeriveTint(hex string, alpha float64) RGBA {
	return RGBA{
		R: hexChannel(hex, 1),
		G: hexChannel(hex, 3),
		B: hexChannel(hex, 5),
		A: alpha,
	}
}

func hexChannel(hex string, offset int) uint8 {
	if len(hex) < offset+2 {
		return 0
	}
	v, err := strconv.ParseUint(hex[offset:offset+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}
