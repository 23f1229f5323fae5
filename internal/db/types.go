package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-preview/internal/types"
)

// ResumeSummary is a listing entry for a stored resume
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// resumeRow holds the raw JSONB columns of one cvs row
type resumeRow struct {
	PersonalInfo   []byte
	Experiences    []byte
	Educations     []byte
	Skills         []byte
	Certifications []byte
	Languages      []byte
	Projects       []byte
	Theme          []byte
}

// decode assembles a resume from the row's columns. NULL columns leave the field empty.
func (r resumeRow) decode() (*types.Resume, error) {
	resume := &types.Resume{}
	columns := []struct {
		name string
		data []byte
		dest any
	}{
		{"personal_info", r.PersonalInfo, &resume.PersonalInfo},
		{"experiences", r.Experiences, &resume.Experiences},
		{"educations", r.Educations, &resume.Educations},
		{"skills", r.Skills, &resume.Skills},
		{"certifications", r.Certifications, &resume.Certifications},
		{"languages", r.Languages, &resume.Languages},
		{"projects", r.Projects, &resume.Projects},
	}
	for _, col := range columns {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dest); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", col.name, err)
		}
	}

	if len(r.Theme) > 0 && string(r.Theme) != "null" {
		var theme types.ThemeConfig
		if err := json.Unmarshal(r.Theme, &theme); err != nil {
			return nil, fmt.Errorf("failed to decode theme: %w", err)
		}
		resume.Theme = &theme
	}
	return resume, nil
}

// encodeRow is the inverse of decode
func encodeRow(resume *types.Resume) (resumeRow, error) {
	var row resumeRow
	fields := []struct {
		name  string
		value any
		dest  *[]byte
	}{
		{"personal_info", resume.PersonalInfo, &row.PersonalInfo},
		{"experiences", resume.Experiences, &row.Experiences},
		{"educations", resume.Educations, &row.Educations},
		{"skills", resume.Skills, &row.Skills},
		{"certifications", resume.Certifications, &row.Certifications},
		{"languages", resume.Languages, &row.Languages},
		{"projects", resume.Projects, &row.Projects},
		{"theme", resume.Theme, &row.Theme},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.value)
		if err != nil {
			return resumeRow{}, fmt.Errorf("failed to encode %s: %w", f.name, err)
		}
		*f.dest = data
	}
	return row, nil
}
