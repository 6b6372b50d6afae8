package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/snonux/hadithtrans/internal/hadith"
)

func silenceLogs(t *testing.T) {
	t.Helper()
	original := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = original })
}

func makeTranslations(n int) []hadith.Translation {
	ts := make([]hadith.Translation, 0, n)
	for i := 1; i <= n; i++ {
		ts = append(ts, hadith.Translation{
			ID:       i,
			Language: "french",
			Text:     fmt.Sprintf("Traduction %d", i),
		})
	}
	return ts
}

func writeBatchFile(t *testing.T, dir, name string, ts []hadith.Translation) string {
	t.Helper()
	data, err := hadith.MarshalIndent(ts)
	if err != nil {
		t.Fatalf("Failed to encode batch file: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	return path
}

func TestTrimShortTail(t *testing.T) {
	trim := TrimShortTail(20)

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"empty batch", 0, 0},
		{"single entry", 1, 0},
		{"short batch loses last entry", 19, 18},
		{"full batch kept whole", 20, 20},
		{"oversized batch kept whole", 21, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trim(makeTranslations(tt.in))
			if len(got) != tt.want {
				t.Errorf("kept %d translations, want %d", len(got), tt.want)
			}
			for i, tr := range got {
				if tr.ID != i+1 {
					t.Fatalf("kept[%d].ID = %d, want %d", i, tr.ID, i+1)
				}
			}
		})
	}
}

func TestCombine(t *testing.T) {
	silenceLogs(t)
	dir := t.TempDir()

	full := writeBatchFile(t, dir, "batch_1.json", makeTranslations(20))
	short := writeBatchFile(t, dir, "batch_2.json", makeTranslations(19))

	combined := Combine([]string{full, short}, TrimShortTail(20))

	if len(combined) != 38 {
		t.Fatalf("len(combined) = %d, want 38", len(combined))
	}
	if combined[0].ID != 1 || combined[19].ID != 20 {
		t.Error("First file's translations out of order")
	}
	if combined[20].ID != 1 || combined[37].ID != 18 {
		t.Error("Second file was not trimmed to its first 18 entries")
	}
}

func TestCombineSkipsBadFiles(t *testing.T) {
	silenceLogs(t)
	dir := t.TempDir()

	good := writeBatchFile(t, dir, "batch_1.json", makeTranslations(20))

	malformed := filepath.Join(dir, "batch_2.json")
	if err := os.WriteFile(malformed, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write malformed file: %v", err)
	}
	missing := filepath.Join(dir, "batch_3.json")

	good2 := writeBatchFile(t, dir, "batch_4.json", makeTranslations(20))

	combined := Combine([]string{good, malformed, missing, good2}, TrimShortTail(20))
	if len(combined) != 40 {
		t.Errorf("len(combined) = %d, want 40", len(combined))
	}
}
