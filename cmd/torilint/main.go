/*
torilint is the CLI for validating TORI reference catalogs.

A TORI scheme describes tagged bibliographies: tag groups, tags, and the
references that carry them. torilint loads one or more YAML or TOML scheme
files, resolves all cross-references, and reports every rule violation.

Usage:

	torilint <command> [arguments]

Commands:

	torilint lint file.yaml       Validate one or more scheme files
	torilint dump a.yaml b.yaml   Merge files and print the canonical form
	torilint version              Print version information

See 'torilint help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"tori/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
