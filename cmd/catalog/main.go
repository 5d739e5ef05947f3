// Package main is the entry point for the catalog CLI
package main

import (
	"os"

	"github.com/pageza/foodfight/backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
