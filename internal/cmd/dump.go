package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"tori/catalog"
	"tori/parse"
)

var (
	dumpFormat string
	dumpOutput string
	dumpDebug  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>...",
	Short: "Merge catalog files and re-emit them in canonical form",
	Long: `Dump loads one or more catalog files, merges them, and writes the
resulting catalog back out in canonical YAML (or TOML with --format toml).
Useful for consolidating a multi-file scheme into a single document.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", formatAuto,
		"output format: auto, yaml, or toml")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "",
		"write to file instead of stdout")
	dumpCmd.Flags().BoolVar(&dumpDebug, "debug", false,
		"dump the in-memory catalog to stderr")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	format := dumpFormat
	if format == formatAuto {
		format = detectFormat(args[0])
	}

	cat, err := loadCatalog(args, format)
	if err != nil {
		return err
	}

	if dumpDebug {
		spew.Fdump(os.Stderr, cat)
	}

	if dumpOutput != "" {
		return writeCatalog(cat, dumpOutput, format)
	}

	var data []byte

	switch format {
	case formatYAML:
		data, err = parse.MarshalYAML(cat)
	case formatTOML:
		data, err = parse.MarshalTOML(cat)
	}

	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))

	return nil
}

func writeCatalog(cat *catalog.Catalog, path, format string) error {
	if format == formatTOML {
		return parse.WriteTOML(cat, path)
	}

	return parse.WriteYAML(cat, path)
}
