package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hadithtrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hadithtrans",
		Short: "Hadith Collection Batch Translator",
		Long: `hadithtrans translates a hadith collection into a target language
using a generative AI provider (Gemini or OpenAI).

Hadiths are submitted in fixed-size batches. Every batch reply is parsed
and saved as its own JSON file under batch_translations/, hadiths that
did not come back are re-requested in a single retry pass, and the
results are combined into final_translations.json.

Examples:
  hadithtrans -k KEY -i bukhari.json -t French
  hadithtrans -i bukhari.json -t Japanese --provider openai
  hadithtrans -i bukhari.json -t Urdu --archive`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hadithtrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.APIKey, "api-key", "k", "", "API key for the translation provider")
	cmd.Flags().StringVarP(&flags.InputFile, "input-file", "i", "", "JSON file with the hadith collection to translate")
	cmd.Flags().StringVarP(&flags.TargetLanguage, "target-language", "t", "", "Language to translate into (e.g. French, Japanese)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider (gemini or openai)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model name (default depends on the provider)")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", flags.ChunkSize, "Number of hadiths per translation batch")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive batch files from a previous run before starting")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	bindings := map[string]*pflag.Flag{
		"translate.provider":   cmd.Flags().Lookup("provider"),
		"translate.model":      cmd.Flags().Lookup("model"),
		"translate.chunk_size": cmd.Flags().Lookup("chunk-size"),
	}
	for key, flag := range bindings {
		viper.BindPFlag(key, flag)
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hadithtrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hadithtrans")
	}

	// Environment variables
	viper.SetEnvPrefix("HADITHTRANS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetAPIKey retrieves the API key for the given provider. The flag value
// wins, then the provider's environment variables, then the config file.
func GetAPIKey(provider, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	switch provider {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key
		}
	default:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
			return key
		}
	}

	// Then check config file
	return viper.GetString("translate.api_key")
}
