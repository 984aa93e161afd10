// Package pipeline provides the high-level orchestration for the resume
// transformation process: initial generation, evaluation, the
// optimize/re-evaluate cycle, skills analysis and merge, and final PDF
// assembly.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-forge/internal/latex"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/session"
)

// ClientFactory builds an LLM client for one operation. Injected so tests
// can substitute a fake model.
type ClientFactory func(ctx context.Context, config *llm.Config, apiKey string) (llm.Client, error)

// Config holds the pipeline's collaborators and defaults.
type Config struct {
	Store         session.Store
	DefaultAPIKey string
	LLMConfig     *llm.Config
	Compiler      latex.Compiler
	ClientFactory ClientFactory
	NewSessionID  func() string
}

// Service runs every pipeline operation against a session store. Stages
// within one session execute strictly sequentially; concurrent operations
// on distinct sessions share nothing but the store.
type Service struct {
	store         session.Store
	defaultAPIKey string
	llmConfig     *llm.Config
	compiler      latex.Compiler
	newClient     ClientFactory
	newSessionID  func() string
}

// NewService creates a pipeline service, filling in default collaborators.
func NewService(cfg Config) *Service {
	s := &Service{
		store:         cfg.Store,
		defaultAPIKey: cfg.DefaultAPIKey,
		llmConfig:     cfg.LLMConfig,
		compiler:      cfg.Compiler,
		newClient:     cfg.ClientFactory,
		newSessionID:  cfg.NewSessionID,
	}
	if s.store == nil {
		s.store = session.NewMemoryStore()
	}
	if s.llmConfig == nil {
		s.llmConfig = llm.DefaultConfig()
	}
	if s.compiler == nil {
		s.compiler = latex.PDFLaTeX{}
	}
	if s.newClient == nil {
		s.newClient = llm.NewClient
	}
	if s.newSessionID == nil {
		s.newSessionID = func() string { return uuid.New().String() }
	}
	return s
}

// clientFor resolves an LLM client using the per-session credential
// override when present, the service default otherwise.
func (s *Service) clientFor(ctx context.Context, override string) (llm.Client, error) {
	apiKey := override
	if apiKey == "" {
		apiKey = s.defaultAPIKey
	}
	if apiKey == "" {
		return nil, &ModelUnavailableError{}
	}

	client, err := s.newClient(ctx, s.llmConfig, apiKey)
	if err != nil {
		return nil, &ModelUnavailableError{Cause: err}
	}
	return client, nil
}
