package latex

import "fmt"

// CompilationError indicates that the external LaTeX compiler produced no
// PDF artifact. It is distinct from infrastructure errors such as a missing
// compiler binary, which it also wraps via Cause.
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}
