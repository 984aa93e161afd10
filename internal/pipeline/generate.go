package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-forge/internal/evaluation"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/templates"
	"github.com/jonathan/resume-forge/internal/types"
)

// Fixed fallback strings for degraded evaluation outcomes.
const (
	defaultFeedback   = "No feedback available"
	noteImproved      = "Resume improved based on feedback and job description."
	unchangedMarker   = "% Note: model returned unchanged LaTeX"
	noFeedbackMessage = "No feedback received from the model."
	evalErrorMessage  = "Unable to evaluate resume-job match due to an error."
)

// GenerateRequest carries the inputs for a new resume session.
type GenerateRequest struct {
	ResumeText     string
	JobDescription string
	CompanyName    string
	APIKey         string // optional per-session credential override
}

// GenerateResult is returned by Generate.
type GenerateResult struct {
	SessionID string
	LatexCode string
	Score     int
	Feedback  string
}

// Generate produces the initial tailored resume: it fills the formatter
// prompt, normalizes the model output, runs a first evaluation, and then
// unconditionally attempts exactly one improvement pass before storing the
// session. The optimization note is set only when the document actually
// changed.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	resumeText := strings.TrimSpace(req.ResumeText)
	jobDescription := strings.TrimSpace(req.JobDescription)
	if resumeText == "" {
		return nil, &ValidationError{Field: "resume_text", Message: "resume content is required"}
	}
	if jobDescription == "" {
		return nil, &ValidationError{Field: "job_description", Message: "job description is required"}
	}

	client, err := s.clientFor(ctx, req.APIKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	formatPrompt := prompts.Fill(prompts.MustGet("resume_formatter.txt"), map[string]string{
		prompts.PlaceholderResumeText:    resumeText,
		prompts.PlaceholderLatexTemplate: templates.Resume(),
	})

	raw, err := client.GenerateContent(ctx, formatPrompt, llm.TierStandard)
	if err != nil {
		return nil, &GenerationError{Message: "model call failed", Cause: err}
	}
	latexCode := llm.CleanLatexBlock(raw)
	if latexCode == "" {
		return nil, &GenerationError{Message: "model returned no resume text"}
	}

	// First evaluation uses the pattern-based extractor with its neutral
	// fallback; a silent model leaves the defaults in place and skips the
	// improvement pass.
	score := evaluation.FallbackScore
	feedback := defaultFeedback
	optimizationNote := ""

	evalText, evalErr := s.invokeEvaluator(ctx, client, latexCode, jobDescription)
	if evalErr != nil {
		log.Printf("initial evaluation failed: %v", evalErr)
	} else if evalText != "" {
		score = evaluation.ExtractScore(evalText)
		feedback = evaluation.EnforceLineBreaks(evalText)

		optimized, changed := s.optimizeOnce(ctx, client, latexCode, jobDescription, feedback)
		latexCode = optimized
		if changed {
			optimizationNote = noteImproved
		}
	}

	id := s.newSessionID()
	s.store.Put(id, &types.Session{
		LatexCode:        latexCode,
		ResumeText:       resumeText,
		JobDescription:   jobDescription,
		CompanyName:      strings.TrimSpace(req.CompanyName),
		APIKey:           req.APIKey,
		Score:            score,
		Feedback:         feedback,
		OptimizationNote: optimizationNote,
	})
	log.Printf("resume generated and stored with session id %s", id)

	return &GenerateResult{
		SessionID: id,
		LatexCode: latexCode,
		Score:     score,
		Feedback:  feedback,
	}, nil
}

// invokeEvaluator fills the evaluator prompt and returns the model's
// trimmed response text.
func (s *Service) invokeEvaluator(ctx context.Context, client llm.Client, latexCode, jobDescription string) (string, error) {
	prompt := prompts.Fill(prompts.MustGet("resume_evaluator.txt"), map[string]string{
		prompts.PlaceholderLatexCode:      latexCode,
		prompts.PlaceholderJobDescription: jobDescription,
	})

	text, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
