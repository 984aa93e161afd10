package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/analysis"
	"github.com/jonathan/resume-forge/internal/latex"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/pdf"
	"github.com/jonathan/resume-forge/internal/session"
	"github.com/jonathan/resume-forge/internal/types"
)

// scriptedClient replays canned model responses in call order.
type scriptedClient struct {
	responses []scriptedResponse
	calls     []scriptedCall
	closed    bool
}

type scriptedResponse struct {
	text string
	err  error
}

type scriptedCall struct {
	prompt string
	tier   llm.ModelTier
}

func (c *scriptedClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.calls = append(c.calls, scriptedCall{prompt: prompt, tier: tier})
	if len(c.responses) == 0 {
		return "", errors.New("unexpected model call")
	}
	next := c.responses[0]
	c.responses = c.responses[1:]
	return next.text, next.err
}

func (c *scriptedClient) Close() error {
	c.closed = true
	return nil
}

// fakeCompiler stands in for pdflatex.
type fakeCompiler struct {
	out        []byte
	err        error
	lastSource string
}

func (f *fakeCompiler) Compile(_ context.Context, source string) ([]byte, error) {
	f.lastSource = source
	return f.out, f.err
}

func newTestService(t *testing.T, client *scriptedClient, compiler latex.Compiler) (*Service, session.Store) {
	t.Helper()
	store := session.NewMemoryStore()
	svc := NewService(Config{
		Store:         store,
		DefaultAPIKey: "test-key",
		Compiler:      compiler,
		ClientFactory: func(_ context.Context, _ *llm.Config, _ string) (llm.Client, error) {
			return client, nil
		},
		NewSessionID: func() string { return "sess-1" },
	})
	return svc, store
}

const (
	sampleResume = "Jane Doe, Software Engineer, 5 years Python"
	sampleJob    = "Looking for senior backend engineer with cloud experience"
	initialLatex = "\\documentclass{article}\n\\begin{document}\nJane Doe\n\\end{document}"
)

func TestGenerate(t *testing.T) {
	improved := strings.Replace(initialLatex, "Jane Doe", "Jane Doe, Backend Engineer", 1)
	client := &scriptedClient{responses: []scriptedResponse{
		{text: "```latex\n" + initialLatex + "\n```"},
		{text: "Score: 6/10\n- **Gaps:** cloud experience missing"},
		{text: improved},
	}}
	svc, store := newTestService(t, client, &fakeCompiler{})

	result, err := svc.Generate(context.Background(), GenerateRequest{
		ResumeText:     sampleResume,
		JobDescription: sampleJob,
		CompanyName:    "Acme Corp",
	})
	require.NoError(t, err)

	assert.Equal(t, "sess-1", result.SessionID)
	assert.Equal(t, improved, result.LatexCode)
	assert.Equal(t, 6, result.Score)
	assert.NotEmpty(t, result.Feedback)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 10)

	sess, ok := store.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, improved, sess.LatexCode)
	assert.Equal(t, noteImproved, sess.OptimizationNote)
	assert.Equal(t, sampleResume, sess.ResumeText)
	assert.Equal(t, sampleJob, sess.JobDescription)
	assert.True(t, client.closed)

	// Formatter, evaluator, optimizer: three calls in pipeline order.
	require.Len(t, client.calls, 3)
	assert.Contains(t, client.calls[0].prompt, sampleResume)
	assert.Contains(t, client.calls[1].prompt, sampleJob)
	assert.Contains(t, client.calls[2].prompt, "cloud experience missing")
}

func TestGenerateValidatesInputs(t *testing.T) {
	svc, _ := newTestService(t, &scriptedClient{}, &fakeCompiler{})

	tests := []struct {
		name  string
		req   GenerateRequest
		field string
	}{
		{"missing resume", GenerateRequest{JobDescription: sampleJob}, "resume_text"},
		{"missing job description", GenerateRequest{ResumeText: sampleResume}, "job_description"},
		{"whitespace only resume", GenerateRequest{ResumeText: "  \n ", JobDescription: sampleJob}, "resume_text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestGenerateWithoutAnyCredential(t *testing.T) {
	svc := NewService(Config{
		Store: session.NewMemoryStore(),
		ClientFactory: func(_ context.Context, _ *llm.Config, _ string) (llm.Client, error) {
			t.Fatal("factory must not be called without a credential")
			return nil, nil
		},
	})

	_, err := svc.Generate(context.Background(), GenerateRequest{ResumeText: sampleResume, JobDescription: sampleJob})
	var mErr *ModelUnavailableError
	assert.True(t, errors.As(err, &mErr))
}

func TestGenerateEmptyModelResponse(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{{text: "   "}}}
	svc, _ := newTestService(t, client, &fakeCompiler{})

	_, err := svc.Generate(context.Background(), GenerateRequest{ResumeText: sampleResume, JobDescription: sampleJob})
	var gErr *GenerationError
	assert.True(t, errors.As(err, &gErr))
}

func TestGenerateSilentEvaluatorSkipsOptimization(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: initialLatex},
		{text: ""},
	}}
	svc, store := newTestService(t, client, &fakeCompiler{})

	result, err := svc.Generate(context.Background(), GenerateRequest{ResumeText: sampleResume, JobDescription: sampleJob})
	require.NoError(t, err)

	assert.Equal(t, 7, result.Score)
	assert.Equal(t, defaultFeedback, result.Feedback)
	assert.Len(t, client.calls, 2, "no optimize call after a silent evaluation")

	sess, _ := store.Get("sess-1")
	assert.Empty(t, sess.OptimizationNote)
	assert.Equal(t, initialLatex, sess.LatexCode)
}

func TestGenerateOptimizerEchoAppendsMarker(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: initialLatex},
		{text: "Score: 5/10\nneeds work"},
		{text: initialLatex}, // model echoes its input
	}}
	svc, store := newTestService(t, client, &fakeCompiler{})

	result, err := svc.Generate(context.Background(), GenerateRequest{ResumeText: sampleResume, JobDescription: sampleJob})
	require.NoError(t, err)

	assert.Equal(t, initialLatex+"\n\n"+unchangedMarker, result.LatexCode)
	sess, _ := store.Get("sess-1")
	assert.Empty(t, sess.OptimizationNote, "echo must not be reported as an improvement")
}

func seedSession(store session.Store, sess *types.Session) {
	store.Put("sess-1", sess)
}

func TestEvaluate(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: "Score: 9/10\n- **Strengths:** everything"},
	}}
	svc, store := newTestService(t, client, &fakeCompiler{})
	seedSession(store, &types.Session{LatexCode: initialLatex, JobDescription: sampleJob, Score: 7})

	result, err := svc.Evaluate(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, 9, result.Score)
	assert.Contains(t, result.Feedback, "Strengths")

	sess, _ := store.Get("sess-1")
	assert.Equal(t, 9, sess.Score)
}

func TestEvaluateUnknownSession(t *testing.T) {
	svc, _ := newTestService(t, &scriptedClient{}, &fakeCompiler{})

	_, err := svc.Evaluate(context.Background(), "nope")
	var nfErr *NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "nope", nfErr.SessionID)
}

func TestEvaluateDegradedOutcomes(t *testing.T) {
	tests := []struct {
		name             string
		response         scriptedResponse
		expectedScore    int
		expectedFeedback string
	}{
		{"empty model response", scriptedResponse{text: "  "}, 0, noFeedbackMessage},
		{"model error", scriptedResponse{err: errors.New("quota exceeded")}, 0, evalErrorMessage},
		{"no labeled score line", scriptedResponse{text: "looks great, 8/10"}, 0, "looks great, 8/10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedClient{responses: []scriptedResponse{tt.response}}
			svc, store := newTestService(t, client, &fakeCompiler{})
			seedSession(store, &types.Session{LatexCode: initialLatex, JobDescription: sampleJob})

			result, err := svc.Evaluate(context.Background(), "sess-1")
			require.NoError(t, err, "LLM irregularities degrade, they do not fail")
			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.expectedFeedback, result.Feedback)
		})
	}
}

func TestOptimizeSkipsGoodScore(t *testing.T) {
	client := &scriptedClient{}
	svc, store := newTestService(t, client, &fakeCompiler{})
	seedSession(store, &types.Session{LatexCode: initialLatex, JobDescription: sampleJob, Score: 9, Feedback: "solid"})

	result, err := svc.Optimize(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, messageAlreadyGood, result.Message)
	assert.Equal(t, initialLatex, result.LatexCode)
	assert.Equal(t, 9, result.Score)
	assert.Empty(t, client.calls, "no model call for an already sufficient score")
}

func TestOptimizeImprovesAndReevaluates(t *testing.T) {
	improved := initialLatex + "\n% tailored"
	client := &scriptedClient{responses: []scriptedResponse{
		{text: improved},
		{text: "Score: 8/10\nmuch better"},
	}}
	svc, store := newTestService(t, client, &fakeCompiler{})
	seedSession(store, &types.Session{LatexCode: initialLatex, JobDescription: sampleJob, Score: 5, Feedback: "needs work"})

	result, err := svc.Optimize(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, messageOptimized, result.Message)
	assert.Equal(t, improved, result.LatexCode)
	assert.Equal(t, 8, result.Score)

	sess, _ := store.Get("sess-1")
	assert.Equal(t, improved, sess.LatexCode)
	assert.Equal(t, noteImproved, sess.OptimizationNote)
	assert.Equal(t, 8, sess.Score)
}

func TestOptimizeEchoAppendsMarkerAndClearsNote(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: initialLatex}, // echo
		{text: "Score: 5/10\nstill the same"},
	}}
	svc, store := newTestService(t, client, &fakeCompiler{})
	seedSession(store, &types.Session{
		LatexCode:        initialLatex,
		JobDescription:   sampleJob,
		Score:            5,
		OptimizationNote: noteImproved,
	})

	result, err := svc.Optimize(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, initialLatex+"\n\n"+unchangedMarker, result.LatexCode)
	sess, _ := store.Get("sess-1")
	assert.Empty(t, sess.OptimizationNote)
}

func TestAnalyzeSkills(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{text: "PROFESSION_TYPE: Software Engineer\nCURRENT_SKILLS:\n  Technical Skills: Go, Python\nMISSING_SKILLS: Kubernetes"},
	}}
	svc, store := newTestService(t, client, &fakeCompiler{})
	seedSession(store, &types.Session{LatexCode: initialLatex, JobDescription: sampleJob})

	record, err := svc.AnalyzeSkills(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", record.ProfessionType)
	assert.Equal(t, []string{"Go", "Python"}, record.SkillsByCategory["Technical Skills"])
	assert.Equal(t, []string{"Kubernetes"}, record.MissingSkills)

	sess, _ := store.Get("sess-1")
	assert.Same(t, record, sess.SkillsAnalysis)
}

func TestAnalyzeSkillsDegradesOnModelError(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{{err: errors.New("timeout")}}}
	svc, store := newTestService(t, client, &fakeCompiler{})
	seedSession(store, &types.Session{LatexCode: initialLatex, JobDescription: sampleJob})

	record, err := svc.AnalyzeSkills(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{analysis.DiagnosticPlaceholder}, record.MissingSkills)

	sess, _ := store.Get("sess-1")
	assert.NotNil(t, sess.SkillsAnalysis)
}

func TestRegenerateSkillsSection(t *testing.T) {
	svc, store := newTestService(t, &scriptedClient{}, &fakeCompiler{})

	record := types.NewSkillsAnalysis()
	record.CategoryOrder = []string{"Technical Skills"}
	record.SkillsByCategory = map[string][]string{"Technical Skills": {"Go"}}
	seedSession(store, &types.Session{LatexCode: initialLatex, SkillsAnalysis: record})

	// First regeneration appends with a single blank-line separator.
	fragment, err := svc.RegenerateSkillsSection(context.Background(), "sess-1")
	require.NoError(t, err)

	sess, _ := store.Get("sess-1")
	assert.Equal(t, initialLatex+"\n\n"+fragment, sess.LatexCode)
	assert.Equal(t, fragment, sess.SkillsAnalysis.LatexSkillsSection)

	// A later regeneration replaces the embedded fragment in place.
	record.SkillsByCategory["Technical Skills"] = []string{"Go", "Rust"}
	second, err := svc.RegenerateSkillsSection(context.Background(), "sess-1")
	require.NoError(t, err)

	sess, _ = store.Get("sess-1")
	assert.Equal(t, initialLatex+"\n\n"+second, sess.LatexCode)
	assert.NotContains(t, sess.LatexCode, fragment)
}

func TestRegenerateSkillsSectionWithoutAnalysis(t *testing.T) {
	svc, store := newTestService(t, &scriptedClient{}, &fakeCompiler{})
	seedSession(store, &types.Session{LatexCode: initialLatex})

	_, err := svc.RegenerateSkillsSection(context.Background(), "sess-1")
	var naErr *NoAnalysisError
	assert.True(t, errors.As(err, &naErr))
}

func TestDownloadPDF(t *testing.T) {
	// A real PDF stands in for the compiler output so the merge succeeds.
	compiled, err := pdf.RenderSummaryPage(0, "compiled resume stand-in", "", "")
	require.NoError(t, err)

	compiler := &fakeCompiler{out: compiled}
	svc, store := newTestService(t, &scriptedClient{}, compiler)
	seedSession(store, &types.Session{
		LatexCode:   initialLatex,
		CompanyName: "Acme Corp",
		Score:       8,
		Feedback:    "solid",
	})

	artifact, err := svc.DownloadPDF(context.Background(), "sess-1")
	require.NoError(t, err)
	require.True(t, len(artifact) > 4)
	assert.Equal(t, "%PDF", string(artifact[:4]))
	assert.Equal(t, initialLatex, compiler.lastSource)
}

func TestDownloadPDFCompilationFailure(t *testing.T) {
	compiler := &fakeCompiler{err: &latex.CompilationError{Message: "PDF was not generated"}}
	svc, store := newTestService(t, &scriptedClient{}, compiler)
	seedSession(store, &types.Session{LatexCode: initialLatex})

	artifact, err := svc.DownloadPDF(context.Background(), "sess-1")
	assert.Nil(t, artifact, "no partial artifact on compilation failure")

	var compErr *latex.CompilationError
	assert.True(t, errors.As(err, &compErr))
}

func TestDownloadPDFUnknownSession(t *testing.T) {
	svc, _ := newTestService(t, &scriptedClient{}, &fakeCompiler{})

	_, err := svc.DownloadPDF(context.Background(), "missing")
	var nfErr *NotFoundError
	assert.True(t, errors.As(err, &nfErr))
}
