package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "humidor",
	Short: "Humidor - cigar collection and tasting journal",
	Long: `Humidor keeps a personal cigar inventory and tasting journal.

It provides a REST API for managing cigars, tasting sessions and
dashboard statistics.

Run 'humidor serve' to start the server, 'humidor import' to bulk-load
cigars, or 'humidor token' to mint an owner access token.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(tokenCmd)
}
