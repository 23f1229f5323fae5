package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-preview/internal/types"
)

// GetResume fetches a resume record by ID. A missing row returns (nil, nil).
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error) {
	var row resumeRow
	err := db.pool.QueryRow(ctx,
		`SELECT personal_info, experiences, educations, skills, certifications, languages, projects, theme
		 FROM cvs WHERE id = $1`,
		id,
	).Scan(
		&row.PersonalInfo, &row.Experiences, &row.Educations, &row.Skills,
		&row.Certifications, &row.Languages, &row.Projects, &row.Theme,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	resume, err := row.decode()
	if err != nil {
		return nil, fmt.Errorf("resume %s: %w", id, err)
	}
	return resume, nil
}

// ListResumes returns the user's resumes, most recently updated first
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, updated_at FROM cvs
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return summaries, nil
}

// SaveResume inserts or replaces a resume record and returns its ID.
// A nil id inserts a new row.
func (db *DB) SaveResume(ctx context.Context, id, userID uuid.UUID, title string, resume *types.Resume) (uuid.UUID, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	row, err := encodeRow(resume)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO cvs (id, user_id, title, personal_info, experiences, educations, skills,
		                  certifications, languages, projects, theme)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
		   title = $3, personal_info = $4, experiences = $5, educations = $6, skills = $7,
		   certifications = $8, languages = $9, projects = $10, theme = $11, updated_at = NOW()`,
		id, userID, title, row.PersonalInfo, row.Experiences, row.Educations, row.Skills,
		row.Certifications, row.Languages, row.Projects, row.Theme,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}
