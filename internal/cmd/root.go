// Package cmd provides CLI commands for the torilint tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "torilint",
	Short: "torilint - TORI scheme linter",
	Long: `torilint loads TORI reference catalogs from YAML or TOML files and
checks them against the scheme rules: referential integrity between tags,
tag groups, and references, uniqueness per element kind, and required
fields.

Multiple input files are merged top-level key by top-level key, with
later files winning.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  setupLogging,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setupLogging runs before every command.
func setupLogging(cmd *cobra.Command, args []string) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}
