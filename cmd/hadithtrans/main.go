package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hadithtrans/internal/archive"
	"codeberg.org/snonux/hadithtrans/internal/batch"
	"codeberg.org/snonux/hadithtrans/internal/cli"
	"codeberg.org/snonux/hadithtrans/internal/hadith"
	"codeberg.org/snonux/hadithtrans/internal/logging"
	"codeberg.org/snonux/hadithtrans/internal/models"
	"codeberg.org/snonux/hadithtrans/internal/processor"
	"codeberg.org/snonux/hadithtrans/internal/translate"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	logging.Setup(flags.Debug)

	// Bound flags resolve through viper, so config file values apply
	// when a flag is not given on the command line
	provider := viper.GetString("translate.provider")
	model := viper.GetString("translate.model")
	chunkSize := viper.GetInt("translate.chunk_size")

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetAPIKey("openai", flags.APIKey))
		return lister.ListAvailableModels()
	}

	if flags.InputFile == "" || flags.TargetLanguage == "" {
		return fmt.Errorf("--input-file and --target-language are required")
	}

	apiKey := cli.GetAPIKey(provider, flags.APIKey)
	if apiKey == "" {
		if provider == "openai" {
			return fmt.Errorf("no API key configured: set --api-key, OPENAI_API_KEY, or translate.api_key in the config file")
		}
		return fmt.Errorf("no API key configured: set --api-key, GEMINI_API_KEY, GOOGLE_API_KEY, or translate.api_key in the config file")
	}

	records, err := hadith.Load(flags.InputFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d hadiths from %s\n", len(records), flags.InputFile)

	// Handle --archive flag: move batch files from a previous run out of
	// the way before this run writes its own
	if flags.Archive {
		if _, err := os.Stat(batch.DirName); os.IsNotExist(err) {
			fmt.Println("No batch directory to archive")
		} else if err := archive.ArchiveBatches(batch.DirName); err != nil {
			return fmt.Errorf("failed to archive batches: %w", err)
		}
	}

	prov, err := translate.NewProvider(&translate.Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	})
	if err != nil {
		return err
	}

	store, err := batch.NewStore(batch.DirName)
	if err != nil {
		return err
	}

	proc := processor.New(processor.Options{
		Provider:  prov,
		Store:     store,
		Language:  flags.TargetLanguage,
		ChunkSize: chunkSize,
	})

	return proc.Run(cmd.Context(), records, processor.FinalFile)
}
