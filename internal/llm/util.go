// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanLatexBlock removes markdown code block wrappers from LLM responses.
// Models often wrap LaTeX in ```latex ... ``` blocks even when instructed
// not to. Text that is not wrapped in a matching fence pair is returned
// trimmed of surrounding whitespace. The function is idempotent.
func CleanLatexBlock(text string) string {
	text = strings.TrimSpace(text)

	for isFenced(text) {
		inner := strings.TrimPrefix(text, "```")
		// Skip a language identifier on the opening fence line (e.g. "latex").
		if idx := strings.Index(inner, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(inner[:idx])
			if firstLine == "" || isLanguageTag(firstLine) {
				inner = inner[idx+1:]
			}
		}
		inner = strings.TrimSuffix(strings.TrimSpace(inner), "```")
		text = strings.TrimSpace(inner)
	}

	return text
}

// isFenced reports whether text starts and ends with a code fence pair.
func isFenced(text string) bool {
	return len(text) > 6 && strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```")
}

// isLanguageTag reports whether a fence's first line looks like a language
// identifier rather than content (short, no spaces, no markup).
func isLanguageTag(line string) bool {
	return len(line) < 20 && !strings.Contains(line, " ") && !strings.Contains(line, "\\") && !strings.Contains(line, "{")
}
