// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEvaluation outputs the evaluation score and feedback for a session.
func (p *Printer) PrintEvaluation(companyName string, score int, feedback string) {
	var sb strings.Builder

	if companyName != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", companyName))
	}
	sb.WriteString(fmt.Sprintf("Score:    %d/10\n", score))

	if feedback != "" {
		sb.WriteString("\nFeedback:\n")
		lines := strings.Split(feedback, "\n")
		count := min(len(lines), maxItemsToShow*2)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s\n", lines[i]))
		}
		if len(lines) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more lines\n", len(lines)-count))
		}
	}

	p.printBox("RESUME EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillsAnalysis outputs a human-readable summary of the skills record.
func (p *Printer) PrintSkillsAnalysis(record *types.SkillsAnalysis) {
	if record == nil {
		return
	}

	var sb strings.Builder

	if record.ProfessionType != "" {
		sb.WriteString(fmt.Sprintf("Profession:  %s\n\n", record.ProfessionType))
	}

	if len(record.CategoryOrder) > 0 {
		sb.WriteString("Current Skills:\n")
		count := min(len(record.CategoryOrder), maxItemsToShow)
		for i := 0; i < count; i++ {
			category := record.CategoryOrder[i]
			skills := strings.Join(record.SkillsByCategory[category], ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", category, skills))
		}
		if len(record.CategoryOrder) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more categories\n", len(record.CategoryOrder)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.appendList(&sb, "Missing Skills", record.MissingSkills)
	p.appendList(&sb, "Recommended Skills", record.RecommendedSkills)
	p.appendList(&sb, "Recommended Certifications", record.RecommendedCertifications)

	p.printBox("SKILLS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimization outputs the result of an optimization pass.
func (p *Printer) PrintOptimization(message string, score int, note string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", message))
	sb.WriteString(fmt.Sprintf("Score:    %d/10\n", score))
	if note != "" {
		sb.WriteString(fmt.Sprintf("Note:     %s\n", note))
	}

	p.printBox("OPTIMIZATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) appendList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("%s:\n", title))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
