// Package evaluation provides parsers for model-produced evaluation output:
// score extraction from loosely structured prose, score extraction from the
// evaluator prompt's labeled format, and feedback text normalization.
package evaluation

import (
	"regexp"
	"strconv"
)

// FallbackScore is returned when no score pattern matches. Extraction
// failure must never abort the pipeline, so a neutral value stands in.
const FallbackScore = 7

// scorePatterns are tried in order from most to least specific. The first
// match wins.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)score[:\- ]*(\d{1,2})/10`),
	regexp.MustCompile(`(?i)overall score[:= ]*(\d{1,2})/10`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*/\s*10`),
}

// ExtractScore pulls a 0-10 score out of free-text evaluation output.
// Returns FallbackScore when no pattern matches.
func ExtractScore(text string) int {
	score, _ := extractScore(text)
	return score
}

// extractScore additionally reports the index of the pattern rule that
// matched (-1 when none did), so tests can verify rule precedence.
func extractScore(text string) (int, int) {
	for i, pattern := range scorePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		score, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return clampScore(score), i
	}
	return FallbackScore, -1
}

// clampScore bounds a parsed score to the valid [0,10] range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
