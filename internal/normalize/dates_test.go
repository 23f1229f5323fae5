package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		current  bool
		expected string
	}{
		{"start and end", "2020", "2022", false, "2020 – 2022"},
		{"current", "2020", "", true, "2020 – Present"},
		{"start only", "2020", "", false, "2020"},
		{"end only", "", "2022", false, "2022"},
		{"current overrides end", "2020", "2021", true, "2020 – Present"},
		{"current without start", "", "", true, "Present"},
		{"nothing", "", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRange(tt.start, tt.end, tt.current))
		})
	}
}
