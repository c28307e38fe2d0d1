// Package main provides the lookgraph CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/lookgraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
