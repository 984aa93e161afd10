package evaluation

import (
	"strconv"
	"strings"
)

// ExtractLabeledScore parses the evaluator prompt's stricter output format,
// scanning line by line for a "Score" label of the form "Score: N/10".
// Returns 0 when no such line parses cleanly.
//
// This parser is intentionally separate from ExtractScore: the evaluation
// prompt promises a labeled line, while ExtractScore scavenges ad-hoc
// feedback prose. The two formats are parsed independently.
func ExtractLabeledScore(text string) int {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "Score") {
			continue
		}
		_, after, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		numerator, _, _ := strings.Cut(strings.TrimSpace(after), "/")
		score, err := strconv.Atoi(strings.TrimSpace(numerator))
		if err != nil {
			continue
		}
		return clampScore(score)
	}
	return 0
}
