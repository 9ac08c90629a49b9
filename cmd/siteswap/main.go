/*
siteswap validates juggling throw schedules and splits them into orbits.

Usage:

	siteswap <command> [arguments]

Commands:

	siteswap validate FILE...   check structure and balance of each document
	siteswap orbits FILE        print the orbits of one document

Settings come from SITESWAP_* environment variables, an optional TOML file
(--config or SITESWAP_CONFIG), and flags, in increasing precedence.
*/
package main

import (
	"os"

	"github.com/katalvlaran/siteswap/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
