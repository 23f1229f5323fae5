package normalize

import (
	"testing"

	"github.com/jonathan/resume-preview/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolveRole_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		exp      types.Experience
		expected string
	}{
		{"role wins", types.Experience{Role: "Lead", Position: "Senior", JobTitle: "Engineer"}, "Lead"},
		{"position next", types.Experience{Position: "Senior", JobTitle: "Engineer"}, "Senior"},
		{"job title only", types.Experience{JobTitle: "Engineer"}, "Engineer"},
		{"none set", types.Experience{Company: "Acme"}, "Role"},
		{"empty role skipped", types.Experience{Role: "", Position: "Analyst"}, "Analyst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveRole(tt.exp))
		})
	}
}

func TestSplitBullets_MarkersAndBlankLines(t *testing.T) {
	bullets := SplitBullets("• Built APIs\n- Reduced cost\n\nShipped v2")
	assert.Equal(t, []string{"Built APIs", "Reduced cost", "Shipped v2"}, bullets)
}

func TestSplitBullets_Empty(t *testing.T) {
	assert.Empty(t, SplitBullets(""))
	assert.Empty(t, SplitBullets("\n\n"))
}

func TestSplitBullets_StripsOnlyOneMarker(t *testing.T) {
	assert.Equal(t, []string{"- nested"}, SplitBullets("- - nested"))
	assert.Equal(t, []string{"Built-in tooling"}, SplitBullets("Built-in tooling"))
}

func TestSplitBullets_MarkerWithoutSpace(t *testing.T) {
	assert.Equal(t, []string{"Tight", "Also tight"}, SplitBullets("•Tight\n-Also tight"))
}

func TestSplitBullets_PreservesOrderAndInnerText(t *testing.T) {
	bullets := SplitBullets("Third\nFirst  with  spaces\nSecond")
	assert.Equal(t, []string{"Third", "First  with  spaces", "Second"}, bullets)
}

func TestSplitBullets_CarriageReturns(t *testing.T) {
	assert.Equal(t, []string{"One", "Two"}, SplitBullets("• One\r\n\r\n• Two\r\n"))
}
