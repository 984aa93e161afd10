package types

// SkillsAnalysis is the structured result of comparing a resume's skills
// against a job description. Every field is initialized by the parser;
// callers never see a partially populated record.
type SkillsAnalysis struct {
	// ProfessionType is the free-text profession identified by the model.
	ProfessionType string `json:"profession_type"`

	// CategoryOrder preserves the order in which skill categories appeared
	// in the model output; SkillsByCategory is keyed by those labels.
	CategoryOrder    []string            `json:"category_order"`
	SkillsByCategory map[string][]string `json:"current_skills_by_category"`

	CurrentCertifications     []string `json:"current_certifications"`
	MissingSkills             []string `json:"missing_skills"`
	RecommendedSkills         []string `json:"recommended_skills"`
	RecommendedCertifications []string `json:"recommended_certifications"`

	// LatexSkillsSection is the exact LaTeX fragment last spliced into the
	// session's resume for this analysis. Empty until the first regenerate.
	LatexSkillsSection string `json:"latex_skills_section"`
}

// NewSkillsAnalysis returns a fully initialized, empty analysis record.
func NewSkillsAnalysis() *SkillsAnalysis {
	return &SkillsAnalysis{
		CategoryOrder:             []string{},
		SkillsByCategory:          map[string][]string{},
		CurrentCertifications:     []string{},
		MissingSkills:             []string{},
		RecommendedSkills:         []string{},
		RecommendedCertifications: []string{},
	}
}

// CurrentSkills flattens the categorized skills in category order.
func (a *SkillsAnalysis) CurrentSkills() []string {
	skills := make([]string, 0)
	for _, category := range a.CategoryOrder {
		skills = append(skills, a.SkillsByCategory[category]...)
	}
	return skills
}
