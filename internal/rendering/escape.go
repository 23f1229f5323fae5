package rendering

import (
	"strings"
	"unicode"
)

// EscapeCSS strips characters that would let a value escape its declaration inside an
// inline style attribute
func EscapeCSS(value string) string {
	if value == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(value))

	for _, r := range value {
		switch r {
		case ';', '{', '}', '<', '>', '\\':
			continue
		default:
			if unicode.IsControl(r) {
				continue
			}
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// SafeImageSource returns src when it is an http(s) URL, an inline image or a relative
// path, and "" otherwise
func SafeImageSource(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	lower := strings.ToLower(src)
	switch {
	case strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "data:image/"):
		return src
	}

	// Relative references have no scheme before the first path separator
	colon := strings.IndexByte(src, ':')
	if colon < 0 {
		return src
	}
	if slash := strings.IndexAny(src, "/?#"); slash >= 0 && slash < colon {
		return src
	}
	return ""
}
