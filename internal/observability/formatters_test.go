package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-forge/internal/types"
)

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation("Acme Corp", 7, "- **Strengths:** solid Go experience\n- **Gaps:** no cloud work")

	out := buf.String()
	assert.Contains(t, out, "RESUME EVALUATION")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Score:    7/10")
	assert.Contains(t, out, "Strengths")
}

func TestPrintEvaluationWithoutCompany(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation("", 4, "")

	out := buf.String()
	assert.Contains(t, out, "Score:    4/10")
	assert.NotContains(t, out, "Company:")
	assert.NotContains(t, out, "Feedback:")
}

func TestPrintSkillsAnalysis(t *testing.T) {
	record := types.NewSkillsAnalysis()
	record.ProfessionType = "Software Engineer"
	record.CategoryOrder = []string{"Technical Skills", "Soft Skills"}
	record.SkillsByCategory = map[string][]string{
		"Technical Skills": {"Go", "Python"},
		"Soft Skills":      {"Communication"},
	}
	record.MissingSkills = []string{"Kubernetes", "Terraform"}
	record.RecommendedCertifications = []string{"CKA"}

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintSkillsAnalysis(record)

	out := buf.String()
	assert.Contains(t, out, "SKILLS ANALYSIS")
	assert.Contains(t, out, "Software Engineer")
	assert.Contains(t, out, "Technical Skills: Go, Python")
	assert.Contains(t, out, "Kubernetes")
	assert.Contains(t, out, "CKA")
}

func TestPrintSkillsAnalysisNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillsAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkillsAnalysisTruncatesLongLists(t *testing.T) {
	record := types.NewSkillsAnalysis()
	record.MissingSkills = []string{"a", "b", "c", "d", "e", "f", "g"}

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintSkillsAnalysis(record)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintOptimization(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOptimization("Resume optimized successfully.", 8, "Resume improved based on feedback and job description.")

	out := buf.String()
	assert.Contains(t, out, "OPTIMIZATION RESULT")
	assert.Contains(t, out, "Score:    8/10")
	assert.Contains(t, out, "Note:")
}

func TestBoxLinesHaveUniformWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation("Acme", 5, "short")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line: %q", line)
	}
}
