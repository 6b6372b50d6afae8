package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveBatches(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()

	// Create batch directory with some test files
	batchDir := filepath.Join(tmpDir, "batch_translations")
	if err := os.MkdirAll(batchDir, 0755); err != nil {
		t.Fatalf("Failed to create batch directory: %v", err)
	}

	// Create some batch files in batch directory
	batchFile := filepath.Join(batchDir, "batch_1.json")
	if err := os.WriteFile(batchFile, []byte(`[]`), 0644); err != nil {
		t.Fatalf("Failed to create batch file: %v", err)
	}

	secondFile := filepath.Join(batchDir, "batch_2.json")
	if err := os.WriteFile(secondFile, []byte(`[]`), 0644); err != nil {
		t.Fatalf("Failed to create batch file: %v", err)
	}

	// Archive the batch directory
	if err := ArchiveBatches(batchDir); err != nil {
		t.Fatalf("ArchiveBatches failed: %v", err)
	}

	// Check that batch directory no longer exists
	if _, err := os.Stat(batchDir); !os.IsNotExist(err) {
		t.Error("Batch directory still exists after archiving")
	}

	// Check that archive directory was created
	archiveDir := filepath.Join(tmpDir, "archive")
	if _, err := os.Stat(archiveDir); os.IsNotExist(err) {
		t.Error("Archive directory was not created")
	}

	// Check that archived directory exists with timestamp
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry in archive directory, got %d", len(entries))
	}

	// Verify the archived directory name starts with "batches-"
	archivedName := entries[0].Name()
	if !strings.HasPrefix(archivedName, "batches-") {
		t.Errorf("Archived directory name doesn't start with 'batches-': %s", archivedName)
	}

	// Verify timestamp format (should be batches-YYYYMMDD-HHMMSS)
	parts := strings.Split(archivedName, "-")
	if len(parts) < 3 {
		t.Errorf("Invalid archive name format: %s", archivedName)
	}

	// Check that archived files exist
	archivedPath := filepath.Join(archiveDir, archivedName)
	for _, name := range []string{"batch_1.json", "batch_2.json"} {
		if _, err := os.Stat(filepath.Join(archivedPath, name)); os.IsNotExist(err) {
			t.Errorf("%s not found in archive", name)
		}
	}
}

func TestArchiveBatches_NonExistentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	nonExistentDir := filepath.Join(tmpDir, "nonexistent")

	err := ArchiveBatches(nonExistentDir)
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveBatches_MultipleArchives(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()

	// Archive twice to ensure unique timestamps
	for i := 0; i < 2; i++ {
		// Create batch directory
		batchDir := filepath.Join(tmpDir, "batch_translations")
		if err := os.MkdirAll(batchDir, 0755); err != nil {
			t.Fatalf("Failed to create batch directory: %v", err)
		}

		// Create a batch file
		batchFile := filepath.Join(batchDir, "batch_1.json")
		content := []byte(`[]`)
		if err := os.WriteFile(batchFile, content, 0644); err != nil {
			t.Fatalf("Failed to create batch file: %v", err)
		}

		// Small delay to ensure different timestamps
		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		// Archive
		if err := ArchiveBatches(batchDir); err != nil {
			t.Fatalf("ArchiveBatches failed on iteration %d: %v", i, err)
		}
	}

	// Check that we have 2 archives
	archiveDir := filepath.Join(tmpDir, "archive")
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	// Verify both archives have different names
	if entries[0].Name() == entries[1].Name() {
		t.Error("Archive names are not unique")
	}
}
