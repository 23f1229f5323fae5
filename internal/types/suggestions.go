// Package types provides type definitions for structured data used throughout the resume-preview system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchReport is returned by the external suggestion service for one job description
type MatchReport struct {
	Score           int          `json:"score"`
	MatchedKeywords []string     `json:"matched_keywords"`
	MissingKeywords []string     `json:"missing_keywords"`
	Suggestions     []Suggestion `json:"suggestions"`
}

// Suggestion is a single proposed edit to a stored resume
type Suggestion struct {
	ID             string `json:"id"`
	Section        string `json:"section,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	SuggestionText string `json:"suggestion_text"`
}

// AnalyzeRequest is the body sent to the suggestion service
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=20"`
}
