// Package main provides the entry point for the match scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "Candidate-to-job match scoring engine",
	Long:  "Matchengine scores candidate profiles against job requirements across skill, experience, education and semantic-similarity dimensions, producing an explainable result with a confidence estimate.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
