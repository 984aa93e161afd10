// Package prompts provides a loader for externalized LLM prompt templates.
// Prompts are stored as plain text files and embedded at compile time.
// Templates use named placeholder tokens such as <RESUME_TEXT> that are
// substituted literally by Fill.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.txt
var promptFiles embed.FS

// Placeholder tokens recognized by the prompt templates.
const (
	PlaceholderResumeText     = "<RESUME_TEXT>"
	PlaceholderLatexTemplate  = "<LATEX_TEMPLATE>"
	PlaceholderLatexCode      = "<LATEX_CODE>"
	PlaceholderJobDescription = "<JOB_DESCRIPTION>"
	PlaceholderFeedback       = "<FEEDBACK>"
)

// cache stores loaded prompt bodies to avoid repeated reads
var (
	cache   = make(map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt body by filename (e.g. "resume_formatter.txt").
// Returns an error if the file is not found.
func Get(filename string) (string, error) {
	cacheMu.RLock()
	if body, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return body, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	body := string(data)

	cacheMu.Lock()
	cache[filename] = body
	cacheMu.Unlock()

	return body, nil
}

// MustGet retrieves a prompt body by filename, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(filename string) string {
	body, err := Get(filename)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return body
}

// Fill replaces every occurrence of each placeholder token with its value.
// Substitution is literal: there is no recursive expansion and no escaping
// of placeholder-like text inside substituted content. Placeholders with no
// entry in subs are left verbatim.
func Fill(template string, subs map[string]string) string {
	result := template
	for token, value := range subs {
		result = strings.ReplaceAll(result, token, value)
	}
	return result
}

// ClearCache clears the prompt cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]string)
	cacheMu.Unlock()
}
