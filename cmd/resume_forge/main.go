// Package main provides the entry point for the Resume Forge CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_forge",
	Short: "Resume Forge HTTP API Server and CLI",
	Long:  "Resume Forge turns plain-text resumes into LaTeX documents tailored to a job description, with model-driven evaluation, optimization, and skills analysis.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
