package pipeline

import (
	"context"

	"github.com/jonathan/resume-forge/internal/analysis"
	"github.com/jonathan/resume-forge/internal/skills"
	"github.com/jonathan/resume-forge/internal/types"
)

// AnalyzeSkills extracts the structured skills record for a session and
// stores it. A degraded record (diagnostic placeholders) is stored and
// returned when the model cannot be parsed; callers must not retry
// automatically.
func (s *Service) AnalyzeSkills(ctx context.Context, sessionID string) (*types.SkillsAnalysis, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{SessionID: sessionID}
	}

	client, err := s.clientFor(ctx, sess.APIKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	sess.SkillsAnalysis = analysis.AnalyzeSkills(ctx, client, sess.LatexCode, sess.JobDescription)
	return sess.SkillsAnalysis, nil
}

// RegenerateSkillsSection rebuilds the LaTeX skills fragment from the
// stored analysis and splices it into the session's resume, replacing the
// previously embedded fragment when one is present.
func (s *Service) RegenerateSkillsSection(ctx context.Context, sessionID string) (string, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return "", &NotFoundError{SessionID: sessionID}
	}
	if sess.SkillsAnalysis == nil {
		return "", &NoAnalysisError{SessionID: sessionID}
	}

	fragment := skills.BuildFragment(sess.SkillsAnalysis)
	sess.LatexCode = skills.ApplyFragment(sess.LatexCode, sess.SkillsAnalysis.LatexSkillsSection, fragment)
	sess.SkillsAnalysis.LatexSkillsSection = fragment

	return fragment, nil
}
