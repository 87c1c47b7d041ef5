package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kvconf",
		Short: "Inspect and validate key=value config files",
		Long: `kvconf reads flat, line-oriented key=value config files.

Blank lines and lines starting with the comment marker are ignored. Every
other line must hold the delimiter exactly once with a non-empty key and
value around it, and each key may appear only once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVar(&provider.Delimiter, "delimiter", "=", "Character separating keys from values")
	rootCmd.PersistentFlags().StringVar(&provider.CommentMarker, "comment", "#", "Character starting a comment line")
	rootCmd.PersistentFlags().StringVar(&provider.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newCheckCmd(provider))
	rootCmd.AddCommand(newKafkaCmd(provider))

	return rootCmd
}
