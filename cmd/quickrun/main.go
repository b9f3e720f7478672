// Package main provides the quickrun CLI entry point.
package main

import (
	"os"

	"github.com/quickrun-cli/quickrun/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
