package translate

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/hadithtrans/internal/hadith"
)

// BuildPrompt renders one translation request for a batch of hadiths.
// Every record contributes its id, Arabic text and English reference
// text, in input order, so the model can answer with matching ids.
func BuildPrompt(records []hadith.Record, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Translate the following hadith texts to %s.\n", language)
	b.WriteString("For each hadith, return only the ID and translation in this exact format:\n")
	fmt.Fprintf(&b, "[ID]: [%s translation]\n\n", language)
	b.WriteString("Here are the hadiths:\n\n")

	for i, r := range records {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "ID: %d\nArabic: %s\nEnglish: %s", r.ID, r.Arabic, r.English.Flatten())
	}
	return b.String()
}
