package batch

import (
	"encoding/json"
	"os"

	"codeberg.org/snonux/hadithtrans/internal/hadith"
	"codeberg.org/snonux/hadithtrans/internal/logging"
)

// TrimPolicy decides which translations of a freshly read batch file
// are kept when batches are combined.
type TrimPolicy func([]hadith.Translation) []hadith.Translation

// TrimShortTail drops the last translation of any batch that came back
// with fewer than full entries. Batches with full or more entries pass
// through whole.
func TrimShortTail(full int) TrimPolicy {
	return func(ts []hadith.Translation) []hadith.Translation {
		if len(ts) > 0 && len(ts) < full {
			return ts[:len(ts)-1]
		}
		return ts
	}
}

// Combine reads the given batch files back in order and concatenates
// their translations, applying trim per file. Files that cannot be read
// or parsed are skipped with a logged warning.
func Combine(files []string, trim TrimPolicy) []hadith.Translation {
	logger := logging.Component("batch")

	var combined []hadith.Translation
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn().Str("file", path).Err(err).Msg("skipping unreadable batch file")
			continue
		}

		var ts []hadith.Translation
		if err := json.Unmarshal(data, &ts); err != nil {
			logger.Warn().Str("file", path).Err(err).Msg("skipping malformed batch file")
			continue
		}
		combined = append(combined, trim(ts)...)
	}
	return combined
}
