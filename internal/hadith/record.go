// Package hadith defines the input and output records of a translation run.
package hadith

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Record is a single hadith as it appears in the input collection.
type Record struct {
	ID      int         `json:"id"`
	Arabic  string      `json:"arabic"`
	English EnglishText `json:"english"`
}

// EnglishText holds the English reference text of a hadith. Collections
// store it either as a plain string or as an object with separate
// narrator and text fields.
type EnglishText struct {
	Narrator string
	Text     string

	structured bool
}

// UnmarshalJSON accepts both representations. Values that are neither a
// string nor an object are kept as their literal JSON text.
func (e *EnglishText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Narrator = ""
		e.Text = s
		e.structured = false
		return nil
	}

	var obj struct {
		Narrator string `json:"narrator"`
		Text     string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		e.Narrator = obj.Narrator
		e.Text = obj.Text
		e.structured = true
		return nil
	}

	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		raw = ""
	}
	e.Narrator = ""
	e.Text = raw
	e.structured = false
	return nil
}

// Flatten renders the English text as a single string. Structured values
// become "narrator text" with surrounding whitespace trimmed; plain
// string values are returned verbatim.
func (e EnglishText) Flatten() string {
	if e.Narrator != "" {
		return strings.TrimSpace(e.Narrator + " " + e.Text)
	}
	if e.structured {
		return strings.TrimSpace(e.Text)
	}
	return e.Text
}

// Load reads a hadith collection from a JSON file. The file must be an
// object with a "hadiths" array; anything else is an error.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var collection struct {
		Hadiths []Record `json:"hadiths"`
	}
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if collection.Hadiths == nil {
		return nil, fmt.Errorf("no \"hadiths\" array in %s", path)
	}
	return collection.Hadiths, nil
}
