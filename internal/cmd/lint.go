package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tori/catalog"
	"tori/parse"
)

// Input formats accepted by the CLI.
const (
	formatAuto = "auto"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var lintFormat string

var lintCmd = &cobra.Command{
	Use:   "lint <file>...",
	Short: "Load catalog files and report every scheme violation",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().StringVarP(&lintFormat, "format", "f", formatAuto,
		"input format: auto, yaml, or toml")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(args, lintFormat)
	if err != nil {
		return err
	}

	slog.Debug("catalog loaded",
		slog.Int("tag_groups", len(cat.TagGroups())),
		slog.Int("tags", len(cat.Tags())),
		slog.Int("references", len(cat.References())))

	diags := cat.Validate()
	for _, line := range diags.Strings() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	if diags.HasErrors() {
		return fmt.Errorf("found %d problems", len(diags.Errors))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OK")

	return nil
}

// loadCatalog loads and merges the given files in the requested format.
// With format auto the format is detected from the first file's extension;
// mixing formats in one invocation is not supported.
func loadCatalog(paths []string, format string) (*catalog.Catalog, error) {
	if format == formatAuto {
		format = detectFormat(paths[0])
	}

	switch format {
	case formatYAML:
		return parse.LoadYAML(paths...)
	case formatTOML:
		return parse.LoadTOML(paths...)
	default:
		return nil, fmt.Errorf("unsupported format %q (expected yaml or toml)", format)
	}
}

// detectFormat picks an input format from a file extension.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	default:
		return formatYAML
	}
}
