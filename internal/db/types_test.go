package db

import (
	"testing"

	"github.com/jonathan/resume-preview/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRow_Decode(t *testing.T) {
	row := resumeRow{
		PersonalInfo: []byte(`{"name":"Ada Lovelace","email":"ada@example.com"}`),
		Experiences:  []byte(`[{"position":"Analyst","company":"Babbage & Co","current":true}]`),
		Skills:       []byte(`{"languages":["Go"],"databases":[{"name":"PostgreSQL"}]}`),
		Languages:    []byte(`[{"language":"English","proficiency":"Native"}]`),
		Theme:        []byte(`{"primaryColor":"#0f766e","layout":"minimal"}`),
	}

	resume, err := row.decode()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", resume.PersonalInfo.Name)
	require.Len(t, resume.Experiences, 1)
	assert.Equal(t, "Analyst", resume.Experiences[0].Position)
	require.Len(t, resume.Skills, 2)
	assert.Equal(t, "Go", resume.Skills[0].DisplayName())
	assert.Equal(t, "databases", resume.Skills[1].Category())
	assert.Nil(t, resume.Educations)
	require.NotNil(t, resume.Theme)
	assert.Equal(t, "minimal", resume.Theme.Layout)
}

func TestResumeRow_DecodeNullColumns(t *testing.T) {
	resume, err := resumeRow{Theme: []byte("null"), Projects: []byte("null")}.decode()
	require.NoError(t, err)
	assert.Equal(t, &types.Resume{}, resume)
}

func TestResumeRow_DecodeBadColumn(t *testing.T) {
	_, err := resumeRow{Educations: []byte(`{"degree":`)}.decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode educations")

	_, err = resumeRow{Theme: []byte(`[1]`)}.decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode theme")
}

func TestEncodeRow_RoundTrip(t *testing.T) {
	original := &types.Resume{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       types.SkillList{types.NewSkill("Go"), types.NewDetailedSkill("SQL", "expert", "")},
		Theme:        &types.ThemeConfig{Layout: "modern"},
	}

	row, err := encodeRow(original)
	require.NoError(t, err)
	assert.JSONEq(t, `["Go",{"name":"SQL","level":"expert"}]`, string(row.Skills))

	decoded, err := row.decode()
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
