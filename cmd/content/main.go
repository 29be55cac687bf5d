// ABOUTME: Main entry point for the HealthInfo content service CLI
// ABOUTME: Subcommands serve the API, seed sample content and import news feeds

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
