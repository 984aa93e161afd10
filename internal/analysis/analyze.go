package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/types"
)

// AnalyzeSkills asks the model to extract and compare skills between the
// resume and the job description, then parses the labeled response.
// Every failure path degrades to a diagnostic record; the caller decides
// whether to surface the degradation, never to retry automatically.
func AnalyzeSkills(ctx context.Context, client llm.Client, latexCode, jobDescription string) *types.SkillsAnalysis {
	prompt := prompts.Fill(prompts.MustGet("skills_analyzer.txt"), map[string]string{
		prompts.PlaceholderLatexCode:      latexCode,
		prompts.PlaceholderJobDescription: jobDescription,
	})

	response, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("skills analysis failed: %v", err)
		return DegradedAnalysis()
	}
	if strings.TrimSpace(response) == "" {
		log.Printf("skills analysis returned no text")
		return DegradedAnalysis()
	}

	return ParseSkillsResponse(strings.TrimSpace(response))
}
