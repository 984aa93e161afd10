package pipeline

import (
	"context"
	"log"

	"github.com/jonathan/resume-forge/internal/evaluation"
	"github.com/jonathan/resume-forge/internal/llm"
)

// EvaluationResult is returned by Evaluate and carried inside Optimize.
type EvaluationResult struct {
	Score    int
	Feedback string
}

// Evaluate re-runs the resume/job-description evaluation for a stored
// session and updates its score and feedback. LLM irregularities degrade
// to a zero score with a fixed diagnostic message; only an unknown session
// id is a hard failure.
func (s *Service) Evaluate(ctx context.Context, sessionID string) (*EvaluationResult, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{SessionID: sessionID}
	}

	client, err := s.clientFor(ctx, sess.APIKey)
	if err != nil {
		log.Printf("evaluation degraded, no usable model: %v", err)
		sess.Score = 0
		sess.Feedback = evalErrorMessage
		return &EvaluationResult{Score: sess.Score, Feedback: sess.Feedback}, nil
	}
	defer func() { _ = client.Close() }()

	score, feedback := s.evaluateMatch(ctx, client, sess.LatexCode, sess.JobDescription)
	sess.Score = score
	sess.Feedback = feedback

	return &EvaluationResult{Score: score, Feedback: feedback}, nil
}

// evaluateMatch runs the evaluator prompt and parses its labeled output.
// The labeled parser is used here, not the pattern scavenger: the
// evaluator prompt promises a "Score: N/10" line. An empty model response
// is a terminal degraded outcome for the attempt, not an error.
func (s *Service) evaluateMatch(ctx context.Context, client llm.Client, latexCode, jobDescription string) (int, string) {
	text, err := s.invokeEvaluator(ctx, client, latexCode, jobDescription)
	if err != nil {
		log.Printf("resume evaluation failed: %v", err)
		return 0, evalErrorMessage
	}
	if text == "" {
		return 0, noFeedbackMessage
	}

	return evaluation.ExtractLabeledScore(text), evaluation.EnforceLineBreaks(text)
}
