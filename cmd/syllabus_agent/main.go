// Package main provides the entry point for the syllabus extraction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "syllabus_agent",
	Short: "Syllabus extraction pipeline",
	Long:  "Syllabus Agent turns course syllabi (PDF, DOCX, ODT, text, images, or web pages) into structured assignment data with resolved calendar due dates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
