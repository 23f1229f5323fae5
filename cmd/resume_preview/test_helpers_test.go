package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the resume_preview binary for testing
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "resume_preview")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_preview ./cmd/resume_preview'", binaryPath)
	}

	return binaryPath
}

const sampleResume = `{
  "personal_info": {"name": "Ada Lovelace", "title": "Analytical Engineer", "email": "ada@example.com"},
  "experiences": [{"role": "Analyst", "company": "Babbage & Co", "startDate": "2018", "current": true, "description": "- Built tables"}],
  "skills": {"programming": ["Go", "SQL"]},
  "theme": {"primaryColor": "#166534", "layout": "modern"}
}`

// writeFile writes content into a temp dir and returns the path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
