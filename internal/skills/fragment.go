// Package skills builds the LaTeX skills-and-certifications fragment from a
// structured analysis record and splices it back into a resume source.
package skills

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

// FragmentHeader identifies the skills section inside a resume source.
const FragmentHeader = "%-----------SKILLS and CERTIFICATIONS-----------"

// noCertifications is rendered when neither current nor recommended
// certifications exist.
const noCertifications = "No current certifications"

// BuildFragment renders the skills analysis as a self-contained LaTeX
// section: one labeled line per non-empty current category in source
// order, a labeled line for recommended skills, and a single combined
// certifications line.
func BuildFragment(a *types.SkillsAnalysis) string {
	var lines []string

	for _, category := range a.CategoryOrder {
		if skillList := a.SkillsByCategory[category]; len(skillList) > 0 {
			lines = append(lines, skillLine(category, skillList))
		}
	}
	if len(a.RecommendedSkills) > 0 {
		lines = append(lines, skillLine("Recommended Skills", a.RecommendedSkills))
	}

	certs := append(append([]string{}, a.CurrentCertifications...), a.RecommendedCertifications...)
	certsText := noCertifications
	if len(certs) > 0 {
		certsText = strings.Join(certs, ", ")
	}

	return fmt.Sprintf(`%s
\section{Professional Skills \& Certifications}
 \begin{itemize}[leftmargin=0.15in, label={}]
    \small{\item{
%s
     \textbf{Certifications}{: %s}
    }}
 \end{itemize}`, FragmentHeader, strings.Join(lines, "\n"), certsText)
}

// skillLine renders one "\textbf{Category}{: a, b} \\" line.
func skillLine(category string, skillList []string) string {
	return fmt.Sprintf(`\textbf{%s}{: %s} \\`, category, strings.Join(skillList, ", "))
}

// ApplyFragment splices a regenerated fragment into the resume source.
// When the prior fragment is non-empty and present verbatim, that exact
// occurrence is replaced; otherwise the new fragment is appended after a
// single blank-line separator.
func ApplyFragment(source, prior, fragment string) string {
	if prior != "" && strings.Contains(source, prior) {
		return strings.Replace(source, prior, fragment, 1)
	}
	return source + "\n\n" + fragment
}
