package pipeline

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-forge/internal/pdf"
)

// DownloadPDF assembles the final two-part deliverable: the rendered
// evaluation summary as page one, followed by the compiled resume. A
// compilation failure propagates as *latex.CompilationError and produces
// no artifact; there is no partial-document fallback.
func (s *Service) DownloadPDF(ctx context.Context, sessionID string) ([]byte, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{SessionID: sessionID}
	}

	feedback := sess.Feedback
	if feedback == "" {
		feedback = "No feedback available."
	}

	summary, err := pdf.RenderSummaryPage(sess.Score, feedback, sess.OptimizationNote, sess.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("failed to render summary page: %w", err)
	}

	compiled, err := s.compiler.Compile(ctx, sess.LatexCode)
	if err != nil {
		return nil, err
	}

	merged, err := pdf.Merge(summary, compiled)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble final PDF: %w", err)
	}
	return merged, nil
}
