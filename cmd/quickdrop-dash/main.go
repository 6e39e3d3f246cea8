// Package main is the entry point for quickdrop-dash.
package main

import (
	"fmt"
	"os"

	"github.com/quickdrop/quickdrop-dash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
