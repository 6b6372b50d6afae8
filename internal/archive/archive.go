package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveBatches moves the batch directory to an archive with timestamp
func ArchiveBatches(batchDir string) error {
	// Check if batch directory exists
	if _, err := os.Stat(batchDir); os.IsNotExist(err) {
		return fmt.Errorf("batch directory does not exist: %s", batchDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(batchDir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("batches-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("batches-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename batch directory to archive
	if err := os.Rename(batchDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive batch directory: %w", err)
	}

	fmt.Printf("Batch directory archived to: %s\n", archivePath)
	return nil
}
