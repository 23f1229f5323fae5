package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateResume_Valid(t *testing.T) {
	doc := `{
		"personal_info": {"name": "Ada Lovelace", "email": "ada@example.com"},
		"experiences": [{"role": "Engineer", "company": "Engines Ltd", "startDate": "2020", "current": true}],
		"educations": [{"degree": "BSc", "field": "Mathematics"}],
		"skills": ["Go", {"name": "PostgreSQL", "level": "expert"}, null],
		"certifications": [{"name": "CKA", "date": "2023"}],
		"languages": [{"language": "English", "proficiency": "Native"}],
		"projects": [{"name": "Engine", "url": "https://example.com"}],
		"theme": {"primaryColor": "#be123c", "layout": "modern"}
	}`
	assert.NoError(t, ValidateResume([]byte(doc)))
	assert.NoError(t, ValidateResume([]byte(`{}`)))
}

func TestValidateResume_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"experiences not a list", `{"experiences": "lots"}`, "experiences"},
		{"current not a boolean", `{"experiences": [{"current": "yes"}]}`, "experiences.0.current"},
		{"name not a string", `{"personal_info": {"name": 42}}`, "personal_info.name"},
		{"bad theme color", `{"theme": {"primaryColor": "red"}}`, "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.doc))
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "resume.schema.json", validationErr.Schema)

			var fields []string
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateResume_NotJSON(t *testing.T) {
	err := ValidateResume([]byte(`{ invalid json }`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []FieldError{{Field: "(root)", Message: "document is not valid JSON"}}, validationErr.Errors)
}

func TestValidateTheme(t *testing.T) {
	assert.NoError(t, ValidateTheme([]byte(`{"primaryColor": "#0F766E", "fontFamily": "Georgia, serif"}`)))
	assert.NoError(t, ValidateTheme([]byte(`{"primaryColor": ""}`)))

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateTheme([]byte(`{"primaryColor": "#12345"}`)), &validationErr)
	assert.Equal(t, "primaryColor", validationErr.Errors[0].Field)
}

func TestValidateEmbedded_UnknownSchema(t *testing.T) {
	err := ValidateEmbedded("job_profile.schema.json", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "job_profile.schema.json", loadErr.Path)
	assert.Contains(t, err.Error(), "schema is not embedded")
}

func TestValidateJSON_Files(t *testing.T) {
	schemaPath := writeFile(t, "person.schema.json", personSchema)

	assert.NoError(t, ValidateJSON(schemaPath, writeFile(t, "valid.json", `{"name": "Ada"}`)))

	err := ValidateJSON(schemaPath, writeFile(t, "invalid.json", `{"age": 30}`))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	assert.Equal(t, "person.schema.json", validationErr.Schema)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	schemaPath := writeFile(t, "person.schema.json", personSchema)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nonexistent_schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nonexistent_json.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "test"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"age": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")

	err.Schema = "theme.schema.json"
	assert.Contains(t, err.Error(), "validation failed against theme.schema.json")
}
