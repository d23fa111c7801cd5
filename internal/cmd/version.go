package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the torilint version, overridable at build time with
// -ldflags "-X tori/internal/cmd.Version=...".
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "torilint", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
