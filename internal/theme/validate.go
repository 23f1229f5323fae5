// Package theme resolves partial theme overrides into a complete, render-ready theme.
package theme

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-preview/internal/types"
)

// themeValidator caches struct metadata across calls; it is safe for concurrent use
var themeValidator = validator.New()

// Validate checks a theme override at an input boundary (API, CLI, config file).
// The renderer itself assumes a validated color; see DeriveTint.
func Validate(cfg types.ThemeConfig) error {
	if err := themeValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	return nil
}
