package hadith

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Translation is one translated hadith. It serializes as an object with
// an "id" field and a single language-keyed text field, for example
// {"id": 17, "french": "..."}.
type Translation struct {
	ID       int
	Language string
	Text     string
}

// LanguageKey derives the JSON field name used for a target language,
// e.g. "French" becomes "french".
func LanguageKey(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// MarshalJSON emits the id first so batch files stay easy to scan.
func (t Translation) MarshalJSON() ([]byte, error) {
	key, err := marshalNoEscape(t.Language)
	if err != nil {
		return nil, err
	}
	text, err := marshalNoEscape(t.Text)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, `{"id":%d,%s:%s}`, t.ID, key, text), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON reads the id and the first non-id field in document
// order, whatever the language key happens to be.
func (t *Translation) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("translation must be a JSON object")
	}

	haveText := false
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v in translation", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		if key == "id" {
			if err := json.Unmarshal(raw, &t.ID); err != nil {
				return fmt.Errorf("invalid translation id: %w", err)
			}
			continue
		}
		if !haveText {
			t.Language = key
			if err := json.Unmarshal(raw, &t.Text); err != nil {
				return fmt.Errorf("invalid %q value: %w", key, err)
			}
			haveText = true
		}
	}
	return nil
}

// MarshalIndent renders v as indented JSON, leaving HTML characters
// unescaped so Arabic and translated text stays readable in the files.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
