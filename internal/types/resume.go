// Package types provides type definitions for structured data used throughout the resume-preview system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the complete structured record for one candidate document.
// Every field is optional; the renderer supplies a fallback for anything missing.
type Resume struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Experiences    []Experience    `json:"experiences,omitempty"`
	Educations     []Education     `json:"educations,omitempty"`
	Skills         SkillList       `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []LanguageEntry `json:"languages,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Theme          *ThemeConfig    `json:"theme,omitempty"`
	// SectionLabels overrides individual captions, keyed like rendering.Labels
	// ("experience", "skills", ...)
	SectionLabels map[string]string `json:"sectionLabels,omitempty"`
}

// PersonalInfo holds the header details of a resume
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	Photo    string `json:"photo,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience represents one work history entry.
// Role, Position and JobTitle are aliases written by different editors; see normalize.ResolveRole.
type Experience struct {
	Role        string `json:"role,omitempty"`
	Position    string `json:"position,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"` // newline-delimited
}

// Education represents one degree or course of study
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

// Certification represents a certificate. Date is the legacy alias of IssueDate.
type Certification struct {
	Name      string `json:"name,omitempty"`
	Issuer    string `json:"issuer,omitempty"`
	IssueDate string `json:"issueDate,omitempty"`
	Date      string `json:"date,omitempty"`
}

// LanguageEntry pairs a spoken language with a free-text proficiency
type LanguageEntry struct {
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ProficiencyLevels are the values offered by the editor. They are a UI affordance only;
// rendering accepts any proficiency text.
var ProficiencyLevels = []string{"Native", "Fluent", "Advanced", "Intermediate", "Basic"}

// Project represents a portfolio item. URL is the legacy alias of Link.
type Project struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ThemeConfig is a possibly partial theme override. Empty fields mean "use the default".
type ThemeConfig struct {
	PrimaryColor string `json:"primaryColor,omitempty" validate:"omitempty,hexcolor,len=7"`
	FontFamily   string `json:"fontFamily,omitempty" validate:"omitempty,max=200"`
	Layout       string `json:"layout,omitempty"`
}
