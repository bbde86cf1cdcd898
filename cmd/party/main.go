// Package main is the entry point for the Fogo & Seda party game CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "party",
	Short: "Fogo & Seda party game engine",
	Long:  `Fogo & Seda is an adult party game: a card-draw truth-or-dare picker and a board variant with dice, tiles, and penalties.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(boardCmd)
}
