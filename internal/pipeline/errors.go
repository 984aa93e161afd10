package pipeline

import "fmt"

// ValidationError indicates a required request input is missing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ModelUnavailableError indicates no usable LLM configuration exists.
type ModelUnavailableError struct {
	Cause error
}

func (e *ModelUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LLM model not available: %v", e.Cause)
	}
	return "LLM model not available"
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates the model failed to produce an initial resume.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates an unknown session identifier.
type NotFoundError struct {
	SessionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// NoAnalysisError indicates no prior skills analysis exists for a session.
type NoAnalysisError struct {
	SessionID string
}

func (e *NoAnalysisError) Error() string {
	return fmt.Sprintf("no skills analysis found for session: %s", e.SessionID)
}
