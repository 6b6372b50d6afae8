package cli

import "codeberg.org/snonux/hadithtrans/internal/batch"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Archive    bool
	ListModels bool
	Debug      bool

	// Translation flags
	APIKey         string
	InputFile      string
	TargetLanguage string
	Provider       string
	Model          string
	ChunkSize      int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:  "gemini",
		ChunkSize: batch.DefaultChunkSize,
	}
}
