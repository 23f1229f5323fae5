// Package normalize turns raw, partially-optional resume records into a canonical presentation model.
package normalize

// Date range tokens
const (
	RangeSeparator = " – "
	PresentLabel   = "Present"
)

// FormatRange renders a start/end pair for display:
//   - no start: only the end-side token (possibly empty)
//   - start plus an end or current: "start – end"
//   - current: the end-side token is "Present", whatever end says
//   - start alone: just the start, no trailing separator
func FormatRange(start, end string, current bool) string {
	endToken := end
	if current {
		endToken = PresentLabel
	}

	if start == "" {
		return endToken
	}
	if endToken == "" {
		return start
	}
	return start + RangeSeparator + endToken
}
