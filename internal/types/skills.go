// Package types provides type definitions for structured data used throughout the resume-preview system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Skill is a tagged union: either a bare name or a detailed record with level and category.
// Use DisplayName to read it; never branch on the JSON shape elsewhere.
type Skill struct {
	name     string
	level    string
	category string
	detailed bool
}

// NewSkill returns a bare-name skill
func NewSkill(name string) Skill {
	return Skill{name: name}
}

// NewDetailedSkill returns a structured skill record
func NewDetailedSkill(name, level, category string) Skill {
	return Skill{name: name, level: level, category: category, detailed: true}
}

// DisplayName returns the text shown for the skill, whichever shape it was given in.
func (s Skill) DisplayName() string {
	return s.name
}

// Level returns the proficiency level of a detailed skill ("" for bare names)
func (s Skill) Level() string {
	return s.level
}

// Category returns the category of a detailed skill ("" for bare names)
func (s Skill) Category() string {
	return s.category
}

// IsDetailed reports whether the skill was given as a structured record
func (s Skill) IsDetailed() bool {
	return s.detailed
}

// IsEmpty reports whether the skill is a falsy bare entry (null or empty string).
// Detailed records are never empty, even with a blank name.
func (s Skill) IsEmpty() bool {
	return !s.detailed && s.name == ""
}

type skillRecord struct {
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// UnmarshalJSON accepts a JSON string or a {name, level, category} object.
// Any other shape is stringified from its raw JSON text.
func (s *Skill) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = Skill{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return fmt.Errorf("failed to decode skill name: %w", err)
		}
		*s = NewSkill(name)
	case '{':
		var rec skillRecord
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return fmt.Errorf("failed to decode skill record: %w", err)
		}
		*s = NewDetailedSkill(rec.Name, rec.Level, rec.Category)
	default:
		*s = NewSkill(string(trimmed))
	}
	return nil
}

// MarshalJSON writes bare skills as strings and detailed skills as objects
func (s Skill) MarshalJSON() ([]byte, error) {
	if !s.detailed {
		return json.Marshal(s.name)
	}
	return json.Marshal(skillRecord{Name: s.name, Level: s.level, Category: s.category})
}

// SkillList decodes either an array of skills or the legacy object form that groups
// skills by category, e.g. {"programming": ["Go"], "cloud": ["GCP"]}.
type SkillList []Skill

// UnmarshalJSON implements the two accepted shapes. Category order follows the document.
func (l *SkillList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var items []Skill
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	case '{':
		items, err := decodeCategorizedSkills(trimmed)
		if err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("skills must be an array or an object of categories, got %s", string(trimmed[:1]))
	}
}

// decodeCategorizedSkills walks the object token by token so categories keep their order
func decodeCategorizedSkills(data []byte) ([]Skill, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read skills object: %w", err)
	}

	var result []Skill
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read skill category: %w", err)
		}
		category, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to read skills for category %q: %w", category, err)
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '[' {
			// Non-list category values carry no skills
			continue
		}

		var items []Skill
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("failed to decode skills for category %q: %w", category, err)
		}
		for _, item := range items {
			if item.IsEmpty() {
				continue
			}
			if item.category == "" {
				item = NewDetailedSkill(item.name, item.level, category)
			}
			result = append(result, item)
		}
	}

	return result, nil
}
