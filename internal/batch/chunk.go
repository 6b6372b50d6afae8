// Package batch splits translation work into fixed-size chunks and
// persists every chunk's result as its own numbered JSON file.
package batch

import "codeberg.org/snonux/hadithtrans/internal/hadith"

const (
	// DefaultChunkSize is how many hadiths go into one translation batch.
	DefaultChunkSize = 20
	// RetryChunkSize is used for the retry pass when only a few hadiths
	// are missing.
	RetryChunkSize = 5
)

// Split partitions records into chunks of at most size entries, in
// input order. A size of zero or less falls back to DefaultChunkSize.
func Split(records []hadith.Record, size int) [][]hadith.Record {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks [][]hadith.Record
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}
