package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/observability"
	"github.com/jonathan/resume-forge/internal/pipeline"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job description in one shot",
	Long: `Runs the full tailoring flow against local files: generate a LaTeX resume from plain text, evaluate it against the job description, analyze skills, rebuild the skills section, and write the assembled PDF.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runTailor,
}

var (
	tailorConfigPath string
	tailorResume     string
	tailorJob        string
	tailorCompany    string
	tailorOut        string
	tailorAPIKey     string
	tailorVerbose    bool
)

func init() {
	// Config file flag (processed first)
	tailorCmd.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	tailorCmd.Flags().StringVarP(&tailorResume, "resume", "r", "", "Path to plain-text resume file")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job description text file")
	tailorCmd.Flags().StringVarP(&tailorCompany, "company", "c", "", "Target company name (optional)")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Output path for the assembled PDF")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if tailorConfigPath != "" {
		loadedCfg, err := config.LoadConfig(tailorConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if tailorVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", tailorConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = tailorResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = tailorJob
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = tailorCompany
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = tailorOut
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = tailorAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = tailorVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Out:    "tailored_resume.pdf",
		APIKey: config.FromEnv().APIKey,
	})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job must be provided (via flag or config)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("an API key is required: set --api-key or GEMINI_API_KEY")
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobDescription, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	svc := pipeline.NewService(pipeline.Config{DefaultAPIKey: cfg.APIKey})
	printer := observability.NewPrinter(os.Stdout)

	result, err := svc.Generate(ctx, pipeline.GenerateRequest{
		ResumeText:     string(resumeText),
		JobDescription: string(jobDescription),
		CompanyName:    cfg.Company,
	})
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}
	if cfg.Verbose {
		printer.PrintEvaluation(cfg.Company, result.Score, result.Feedback)
	}

	record, err := svc.AnalyzeSkills(ctx, result.SessionID)
	if err != nil {
		return fmt.Errorf("failed to analyze skills: %w", err)
	}
	if cfg.Verbose {
		printer.PrintSkillsAnalysis(record)
	}

	if _, err := svc.RegenerateSkillsSection(ctx, result.SessionID); err != nil {
		return fmt.Errorf("failed to rebuild skills section: %w", err)
	}

	artifact, err := svc.DownloadPDF(ctx, result.SessionID)
	if err != nil {
		return fmt.Errorf("failed to assemble PDF: %w", err)
	}

	if err := os.WriteFile(cfg.Out, artifact, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s (score %d/10)\n", cfg.Out, result.Score)
	return nil
}
