package rendering

import (
	"encoding/json"

	"github.com/jonathan/resume-preview/internal/normalize"
)

// NamePlaceholder is shown when a record carries no name
const NamePlaceholder = "Your Name"

// Labels is the set of visible captions a layout prints
type Labels struct {
	Summary        string `json:"summary"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
	Languages      string `json:"languages"`
	Projects       string `json:"projects"`
	Grade          string `json:"grade"`
	NameFallback   string `json:"name_fallback"`
}

// EnglishLabels returns the default caption set
func EnglishLabels() Labels {
	return Labels{
		Summary:        "Profile",
		Experience:     "Professional Experience",
		Education:      "Education",
		Skills:         "Skills",
		Certifications: "Certifications",
		Languages:      "Languages",
		Projects:       "Projects",
		Grade:          "Grade: ",
		NameFallback:   NamePlaceholder,
	}
}

// GermanLabels returns the German caption set
func GermanLabels() Labels {
	return Labels{
		Summary:        "Profil",
		Experience:     "Berufserfahrung",
		Education:      "Bildung",
		Skills:         "Fähigkeiten",
		Certifications: "Zertifikate",
		Languages:      "Sprachen",
		Projects:       "Projekte",
		Grade:          "Note: ",
		NameFallback:   NamePlaceholder,
	}
}

// LabelsFor returns the caption set for a language code ("en", "de").
// The boolean is false for unknown codes, in which case English is returned.
func LabelsFor(lang string) (Labels, bool) {
	switch lang {
	case "", "en":
		return EnglishLabels(), true
	case "de":
		return GermanLabels(), true
	default:
		return EnglishLabels(), false
	}
}

// Title returns the caption for a section kind
func (l Labels) Title(kind normalize.SectionKind) string {
	switch kind {
	case normalize.SectionSummary:
		return l.Summary
	case normalize.SectionExperience:
		return l.Experience
	case normalize.SectionEducation:
		return l.Education
	case normalize.SectionSkills:
		return l.Skills
	case normalize.SectionCertifications:
		return l.Certifications
	case normalize.SectionLanguages:
		return l.Languages
	case normalize.SectionProjects:
		return l.Projects
	}
	return string(kind)
}

// Overlay replaces the captions named in overrides, keyed by the JSON field names of
// Labels. Unknown keys and blank values are ignored.
func (l Labels) Overlay(overrides map[string]string) Labels {
	set := make(map[string]string, len(overrides))
	for key, value := range overrides {
		if value != "" {
			set[key] = value
		}
	}
	if len(set) == 0 {
		return l
	}

	data, err := json.Marshal(set)
	if err != nil {
		return l
	}
	out := l
	if err := json.Unmarshal(data, &out); err != nil {
		return l
	}
	return out
}

// withDefaults fills any blank caption from English
func (l Labels) withDefaults() Labels {
	en := EnglishLabels()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&l.Summary, en.Summary)
	fill(&l.Experience, en.Experience)
	fill(&l.Education, en.Education)
	fill(&l.Skills, en.Skills)
	fill(&l.Certifications, en.Certifications)
	fill(&l.Languages, en.Languages)
	fill(&l.Projects, en.Projects)
	fill(&l.Grade, en.Grade)
	fill(&l.NameFallback, en.NameFallback)
	return l
}
