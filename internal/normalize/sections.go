// Package normalize turns raw, partially-optional resume records into a canonical presentation model.
package normalize

// SectionKind names one logical block of resume content
type SectionKind string

// Section kinds
const (
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
	SectionLanguages      SectionKind = "languages"
	SectionProjects       SectionKind = "projects"
)

// Sections lists every section kind
var Sections = []SectionKind{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionLanguages,
	SectionProjects,
}

// HasContent reports whether a section has anything to show. Presence is existence:
// a summary of spaces counts, an empty collection does not. Unknown kinds have no content.
func HasContent(kind SectionKind, m *Model) bool {
	if m == nil {
		return false
	}

	switch kind {
	case SectionSummary:
		return m.Summary != ""
	case SectionExperience:
		return len(m.Experiences) > 0
	case SectionEducation:
		return len(m.Educations) > 0
	case SectionSkills:
		return len(m.Skills) > 0
	case SectionCertifications:
		return len(m.Certifications) > 0
	case SectionLanguages:
		return len(m.Languages) > 0
	case SectionProjects:
		return len(m.Projects) > 0
	default:
		return false
	}
}
