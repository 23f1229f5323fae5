// Package schemas embeds the JSON Schemas for resume records and theme overrides.
package schemas

import "embed"

// Schema file names
const (
	Resume = "resume.schema.json"
	Theme  = "theme.schema.json"
)

// Names lists every embedded schema
var Names = []string{Resume, Theme}

//go:embed *.schema.json
var files embed.FS

// Load returns the raw content of an embedded schema
func Load(name string) ([]byte, error) {
	return files.ReadFile(name)
}
