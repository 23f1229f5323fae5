// Package normalize turns raw, partially-optional resume records into a canonical presentation model.
package normalize

import (
	"strings"

	"github.com/jonathan/resume-preview/internal/types"
)

// Model is the canonical presentation model. Every alias chain is already resolved,
// so layout code reads one field per concept.
type Model struct {
	Header         Header
	Summary        string
	Experiences    []ExperienceItem
	Educations     []EducationItem
	Skills         []string
	Certifications []CertificationItem
	Languages      []LanguageItem
	Projects       []ProjectItem
	// SectionLabels holds the record's non-blank caption overrides
	SectionLabels map[string]string
}

// Header holds the personal details shown at the top of a page
type Header struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	Website  string
	Photo    string
}

// ExperienceItem is a work entry with resolved role, date range and bullets
type ExperienceItem struct {
	Role      string
	Company   string
	Location  string
	DateRange string
	Bullets   []string
}

// EducationItem is an education entry with its display title precomputed
type EducationItem struct {
	Title       string // "Degree in Field"
	Institution string
	DateRange   string
	Grade       string
}

// CertificationItem is a certification with its issue date resolved
type CertificationItem struct {
	Name   string
	Issuer string
	Date   string
}

// LanguageItem is a language/proficiency pair
type LanguageItem struct {
	Language    string
	Proficiency string
}

// ProjectItem is a project with its link resolved
type ProjectItem struct {
	Name        string
	Link        string
	Description string
}

// Normalize builds the presentation model for r. A nil record yields an empty model.
// The input is never modified and input order is preserved in every collection.
func Normalize(r *types.Resume) *Model {
	m := &Model{}
	if r == nil {
		return m
	}

	pi := r.PersonalInfo
	m.Header = Header{
		Name:     pi.Name,
		Title:    pi.Title,
		Email:    pi.Email,
		Phone:    pi.Phone,
		Location: pi.Location,
		LinkedIn: pi.LinkedIn,
		Website:  pi.Website,
		Photo:    pi.Photo,
	}
	m.Summary = pi.Summary

	for _, exp := range r.Experiences {
		m.Experiences = append(m.Experiences, ExperienceItem{
			Role:      ResolveRole(exp),
			Company:   exp.Company,
			Location:  exp.Location,
			DateRange: FormatRange(exp.StartDate, exp.EndDate, exp.Current),
			Bullets:   SplitBullets(exp.Description),
		})
	}

	for _, edu := range r.Educations {
		m.Educations = append(m.Educations, EducationItem{
			Title:       educationTitle(edu),
			Institution: edu.Institution,
			DateRange:   FormatRange(edu.StartDate, edu.EndDate, false),
			Grade:       edu.Grade,
		})
	}

	for _, s := range r.Skills {
		if s.IsEmpty() {
			continue
		}
		m.Skills = append(m.Skills, s.DisplayName())
	}

	for _, c := range r.Certifications {
		m.Certifications = append(m.Certifications, CertificationItem{
			Name:   c.Name,
			Issuer: c.Issuer,
			Date:   firstNonEmpty("", c.IssueDate, c.Date),
		})
	}

	for _, l := range r.Languages {
		m.Languages = append(m.Languages, LanguageItem{Language: l.Language, Proficiency: l.Proficiency})
	}

	for _, p := range r.Projects {
		m.Projects = append(m.Projects, ProjectItem{
			Name:        p.Name,
			Link:        firstNonEmpty("", p.Link, p.URL),
			Description: p.Description,
		})
	}

	for key, label := range r.SectionLabels {
		if label = strings.TrimSpace(label); label == "" {
			continue
		}
		if m.SectionLabels == nil {
			m.SectionLabels = make(map[string]string, len(r.SectionLabels))
		}
		m.SectionLabels[key] = label
	}

	return m
}

func educationTitle(edu types.Education) string {
	switch {
	case edu.Field == "":
		return edu.Degree
	case edu.Degree == "":
		return edu.Field
	default:
		return edu.Degree + " in " + edu.Field
	}
}
