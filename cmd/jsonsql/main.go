// Package main provides the jsonsql CLI, which queries JSON files as SQL tables.
package main

import (
	"os"

	"github.com/leapstack-labs/jsonsql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
