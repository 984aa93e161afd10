package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/pipeline"
	"github.com/jonathan/resume-forge/internal/server"
	"github.com/jonathan/resume-forge/internal/session"
)

var (
	servePort     int
	servePasscode string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating, evaluating, and optimizing tailored resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&servePasscode, "passcode", "", "Shared passcode gating the API (optional, defaults to RESUME_FORGE_PASSCODE env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	passcode := servePasscode
	if !cmd.Flags().Changed("passcode") {
		passcode = config.FromEnv().Passcode
	}

	svc := pipeline.NewService(pipeline.Config{
		Store:         session.NewMemoryStore(),
		DefaultAPIKey: apiKey,
	})

	srv := server.New(server.Config{
		Port:     servePort,
		Passcode: passcode,
	}, svc)

	return srv.Start()
}
