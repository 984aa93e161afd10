// Package types defines shared data structures used across the resume forge pipeline.
package types

// Session holds the evolving state of one resume-generation workflow.
// It is created once by the generate step and mutated in place by the
// evaluate, optimize and skills-merge steps.
type Session struct {
	// LatexCode is the current best LaTeX source for the resume.
	LatexCode string `json:"latex_code"`

	// ResumeText and JobDescription are the immutable inputs for this session.
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`

	// CompanyName is an optional display label for the summary page.
	CompanyName string `json:"company_name,omitempty"`

	// APIKey is an optional per-session override of the Gemini credential.
	APIKey string `json:"-"`

	// Score is the latest evaluation score in [0,10].
	Score int `json:"score"`

	// Feedback is the latest normalized evaluation feedback.
	Feedback string `json:"feedback"`

	// OptimizationNote describes whether and why the resume changed during
	// the last optimize attempt. Empty when no change occurred.
	OptimizationNote string `json:"optimization_note,omitempty"`

	// SkillsAnalysis is nil until an analysis pass has run.
	SkillsAnalysis *SkillsAnalysis `json:"skills_analysis,omitempty"`
}
