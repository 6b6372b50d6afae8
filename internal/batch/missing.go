package batch

import "codeberg.org/snonux/hadithtrans/internal/hadith"

// Missing returns the records whose ids never showed up among the
// combined translations, in input order. An id that came back with an
// empty text still counts as translated.
func Missing(records []hadith.Record, translations []hadith.Translation) []hadith.Record {
	translated := make(map[int]struct{}, len(translations))
	for _, t := range translations {
		translated[t.ID] = struct{}{}
	}

	var missing []hadith.Record
	for _, r := range records {
		if _, ok := translated[r.ID]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
