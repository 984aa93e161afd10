// Package analysis extracts a structured skills record from the labeled
// text format the skills-analyzer prompt asks the model to produce.
package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// Section labels expected in the analyzer output.
const (
	sectionProfession       = "PROFESSION_TYPE"
	sectionCurrentSkills    = "CURRENT_SKILLS"
	sectionCurrentCerts     = "CURRENT_CERTIFICATIONS"
	sectionMissingSkills    = "MISSING_SKILLS"
	sectionRecommended      = "RECOMMENDED_SKILLS"
	sectionRecommendedCerts = "RECOMMENDED_CERTIFICATIONS"
)

// DiagnosticPlaceholder marks a degraded analysis. Callers treat a record
// carrying it as "analysis degraded" rather than retrying automatically.
const DiagnosticPlaceholder = "Error analyzing skills"

var (
	// nextLabelRe finds the start of the following ALL-CAPS section label.
	nextLabelRe = regexp.MustCompile(`\n[A-Z_]+:`)

	// listSepRe splits flat list sections on commas or newlines.
	listSepRe = regexp.MustCompile(`[,\n]`)
)

// ParseSkillsResponse parses the analyzer's labeled-section output into a
// fully initialized SkillsAnalysis. Sections are identified by an ALL-CAPS
// label followed by a colon; a section runs until the next such label or
// end of text. Missing sections yield empty values. The function never
// fails on arbitrary input; an internal panic degrades to DegradedAnalysis.
func ParseSkillsResponse(text string) (result *types.SkillsAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			result = DegradedAnalysis()
		}
	}()

	result = types.NewSkillsAnalysis()
	result.ProfessionType = extractSection(text, sectionProfession)
	result.CurrentCertifications = splitList(extractSection(text, sectionCurrentCerts))
	result.MissingSkills = splitList(extractSection(text, sectionMissingSkills))
	result.RecommendedSkills = splitList(extractSection(text, sectionRecommended))
	result.RecommendedCertifications = splitList(extractSection(text, sectionRecommendedCerts))

	parseCategories(extractSection(text, sectionCurrentSkills), result)
	return result
}

// DegradedAnalysis returns the record signalling that analysis failed:
// every list holds the single diagnostic placeholder and the category map
// is empty.
func DegradedAnalysis() *types.SkillsAnalysis {
	a := types.NewSkillsAnalysis()
	a.CurrentCertifications = []string{DiagnosticPlaceholder}
	a.MissingSkills = []string{DiagnosticPlaceholder}
	a.RecommendedSkills = []string{DiagnosticPlaceholder}
	a.RecommendedCertifications = []string{DiagnosticPlaceholder}
	return a
}

// extractSection returns the trimmed content of the named section, or the
// empty string when the label is absent. Label matching is case-sensitive.
func extractSection(text, label string) string {
	idx := strings.Index(text, label+":")
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(label)+1:]
	if loc := nextLabelRe.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	return strings.TrimSpace(rest)
}

// splitList splits a flat section value on commas or newlines, trimming
// each entry and discarding empties.
func splitList(text string) []string {
	entries := []string{}
	for _, entry := range listSepRe.Split(text, -1) {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseCategories parses CURRENT_SKILLS lines of the form
// "category: comma-list" into the record's ordered category map. Lines
// without a colon are ignored.
func parseCategories(section string, result *types.SkillsAnalysis) {
	for _, line := range strings.Split(section, "\n") {
		key, val, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		category := strings.TrimSpace(key)
		if category == "" {
			continue
		}
		if _, exists := result.SkillsByCategory[category]; !exists {
			result.CategoryOrder = append(result.CategoryOrder, category)
		}
		result.SkillsByCategory[category] = splitList(val)
	}
}
