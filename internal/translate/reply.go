package translate

import (
	"strconv"
	"strings"

	"codeberg.org/snonux/hadithtrans/internal/hadith"
)

// ParseReply extracts per-hadith translations from a model reply. A line
// whose text before the first colon is a plain decimal number starts a
// new translation; later lines up to the next such line belong to it
// and are joined with single spaces. Anything before the first
// identifier line is discarded, as are identifiers that end up with no
// text at all. ParseReply never fails: a reply in the wrong shape just
// yields fewer translations.
func ParseReply(reply, languageKey string) []hadith.Translation {
	var (
		translations []hadith.Translation
		id           int
		parts        []string
		haveID       bool
	)

	flush := func() {
		if haveID && len(parts) > 0 {
			translations = append(translations, hadith.Translation{
				ID:       id,
				Language: languageKey,
				Text:     strings.Join(parts, " "),
			})
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if n, rest, ok := splitIDLine(line); ok {
			flush()
			id = n
			haveID = true
			parts = nil
			if rest != "" {
				parts = append(parts, rest)
			}
			continue
		}

		if haveID {
			parts = append(parts, line)
		}
	}
	flush()

	return translations
}

// splitIDLine reports whether line starts a new translation, returning
// the id and the trimmed remainder after the first colon.
func splitIDLine(line string) (int, string, bool) {
	before, after, found := strings.Cut(line, ":")
	if !found {
		return 0, "", false
	}

	prefix := strings.TrimSpace(before)
	if prefix == "" {
		return 0, "", false
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0, "", false
		}
	}

	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", false
	}
	return n, strings.TrimSpace(after), true
}
