package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/hadithtrans/internal/hadith"
)

// DirName is the directory batch files are written to, relative to the
// working directory.
const DirName = "batch_translations"

// Store persists chunk results as numbered JSON files. A sequence
// number is consumed only when a write succeeds, so the files of a run
// stay contiguous even when chunks fail in between.
type Store struct {
	dir  string
	next int
}

// NewStore creates the batch directory if needed. Numbering starts
// at 1.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create batch directory: %w", err)
	}
	return &Store{dir: dir, next: 1}, nil
}

// NextSeq returns the sequence number the next successful write will
// use.
func (s *Store) NextSeq() int {
	return s.next
}

// WriteChunk saves one chunk's translations as batch_<seq>.json and
// returns the file path. A chunk with no translations is stored as an
// empty array.
func (s *Store) WriteChunk(translations []hadith.Translation) (string, error) {
	if translations == nil {
		translations = []hadith.Translation{}
	}
	data, err := hadith.MarshalIndent(translations)
	if err != nil {
		return "", fmt.Errorf("failed to encode batch %d: %w", s.next, err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("batch_%d.json", s.next))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.next++
	return path, nil
}
