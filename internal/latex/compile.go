// Package latex wraps the external LaTeX compiler that turns resume source
// into a PDF.
package latex

import (
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// CompilationTimeout is the maximum time to wait for LaTeX compilation
	CompilationTimeout = 30 * time.Second

	sourceFileName = "resume.tex"
)

// Compiler compiles LaTeX source into PDF bytes. Implementations report a
// *CompilationError when no artifact is produced.
type Compiler interface {
	Compile(ctx context.Context, source string) ([]byte, error)
}

// PDFLaTeX compiles using the pdflatex binary.
type PDFLaTeX struct{}

// Compile writes the source into a temporary directory, runs pdflatex in
// nonstopmode and returns the produced PDF. A missing output PDF is the
// compilation-failure signal regardless of the process exit status; a PDF
// produced alongside warnings is returned as-is.
func (PDFLaTeX) Compile(ctx context.Context, source string) ([]byte, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "latex-compile-*")
	if err != nil {
		return nil, &CompilationError{
			Message: "failed to create temporary working directory",
			Cause:   err,
		}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, sourceFileName)
	if err := os.WriteFile(texPath, []byte(source), 0644); err != nil {
		return nil, &CompilationError{
			Message: "failed to write LaTeX source to working directory",
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts on errors.
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()
	logOutput := stdout.String() + stderr.String()

	pdfPath := filepath.Join(workDir, strings.TrimSuffix(sourceFileName, ".tex")+".pdf")
	pdfBytes, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		return nil, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// LaTeX can produce a usable PDF while still exiting non-zero.
	if runErr != nil {
		log.Printf("pdflatex exited with errors but produced a PDF: %v", runErr)
	}

	return pdfBytes, nil
}
