// Package normalize turns raw, partially-optional resume records into a canonical presentation model.
package normalize

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-preview/internal/types"
)

// PlaceholderRole is shown when an experience has no role under any alias
const PlaceholderRole = "Role"

// ResolveRole returns the first non-empty of role, position and job_title, or PlaceholderRole.
func ResolveRole(exp types.Experience) string {
	return firstNonEmpty(PlaceholderRole, exp.Role, exp.Position, exp.JobTitle)
}

// SplitBullets splits a free-text description into bullet items.
// Lines are split on newline, empty lines dropped, and one leading "•" or "-" marker
// (plus the whitespace after it) removed. Line order is kept; nothing is merged or wrapped.
func SplitBullets(description string) []string {
	if description == "" {
		return nil
	}

	lines := strings.Split(description, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		bullets = append(bullets, stripBulletMarker(line))
	}
	return bullets
}

func stripBulletMarker(line string) string {
	switch {
	case strings.HasPrefix(line, "•"):
		line = strings.TrimPrefix(line, "•")
	case strings.HasPrefix(line, "-"):
		line = strings.TrimPrefix(line, "-")
	default:
		return line
	}
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// firstNonEmpty returns the first non-empty candidate, or fallback when all are empty
func firstNonEmpty(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}
