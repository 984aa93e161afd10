package pipeline

import (
	"context"
	"log"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/prompts"
)

// goodScoreThreshold gates the user-triggered optimize path. The initial
// generation path always attempts one improvement pass regardless of
// score; the two behaviors are intentionally distinct.
const goodScoreThreshold = 8

// Optimize messages surfaced to the caller.
const (
	messageAlreadyGood = "Resume already has a good score. No optimization needed."
	messageOptimized   = "Resume optimized successfully."
)

// OptimizeResult is returned by Optimize.
type OptimizeResult struct {
	LatexCode string
	Score     int
	Feedback  string
	Message   string
}

// Optimize runs at most one optimize/re-evaluate cycle for a session.
// Sessions already scoring at or above the threshold are returned
// unchanged without any model call. This is not a convergence loop: a
// single pass runs per invocation regardless of the resulting score.
func (s *Service) Optimize(ctx context.Context, sessionID string) (*OptimizeResult, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{SessionID: sessionID}
	}

	if sess.Score >= goodScoreThreshold {
		return &OptimizeResult{
			LatexCode: sess.LatexCode,
			Score:     sess.Score,
			Feedback:  sess.Feedback,
			Message:   messageAlreadyGood,
		}, nil
	}

	client, err := s.clientFor(ctx, sess.APIKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	optimized, changed := s.optimizeOnce(ctx, client, sess.LatexCode, sess.JobDescription, sess.Feedback)
	sess.LatexCode = optimized
	sess.OptimizationNote = ""
	if changed {
		sess.OptimizationNote = noteImproved
	}

	score, feedback := s.evaluateMatch(ctx, client, sess.LatexCode, sess.JobDescription)
	sess.Score = score
	sess.Feedback = feedback

	return &OptimizeResult{
		LatexCode: sess.LatexCode,
		Score:     score,
		Feedback:  feedback,
		Message:   messageOptimized,
	}, nil
}

// optimizeOnce asks the model to improve the resume using the evaluation
// feedback. Failures echo the unmodified input. A byte-identical echo from
// the model gets a diagnostic comment marker appended so the result is
// never silently reported as improved; changed reports whether a real
// improvement occurred.
func (s *Service) optimizeOnce(ctx context.Context, client llm.Client, latexCode, jobDescription, feedback string) (result string, changed bool) {
	prompt := prompts.Fill(prompts.MustGet("resume_optimizer.txt"), map[string]string{
		prompts.PlaceholderLatexCode:      latexCode,
		prompts.PlaceholderJobDescription: jobDescription,
		prompts.PlaceholderFeedback:       feedback,
	})

	raw, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		log.Printf("resume optimization failed: %v", err)
		return latexCode, false
	}

	optimized := llm.CleanLatexBlock(raw)
	if optimized == "" {
		log.Printf("model returned empty response for optimization")
		return latexCode, false
	}
	if optimized == latexCode {
		log.Printf("model returned unchanged resume")
		return latexCode + "\n\n" + unchangedMarker, false
	}

	return optimized, true
}
