package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-forge/internal/pipeline"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// GenerateRequest represents the request body for POST /resumes
type GenerateRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	CompanyName    string `json:"company_name,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
}

// GenerateResponse represents the response for POST /resumes
type GenerateResponse struct {
	SessionID string `json:"session_id"`
	LatexCode string `json:"latex_code"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
}

// EvaluateResponse represents the response for POST /resumes/{id}/evaluate
type EvaluateResponse struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// OptimizeResponse represents the response for POST /resumes/{id}/optimize
type OptimizeResponse struct {
	LatexCode string `json:"latex_code"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
	Message   string `json:"message"`
}

// RegenerateResponse represents the response for POST /resumes/{id}/skills/regenerate
type RegenerateResponse struct {
	SkillsSection string `json:"skills_section"`
}

// handleGenerate creates a new resume session from raw resume text and a
// job description.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("%s is required", fieldErrs[0].Field()))
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.svc.Generate(r.Context(), pipeline.GenerateRequest{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		CompanyName:    req.CompanyName,
		APIKey:         req.APIKey,
	})
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, GenerateResponse{
		SessionID: result.SessionID,
		LatexCode: result.LatexCode,
		Score:     result.Score,
		Feedback:  result.Feedback,
	})
}

// handleEvaluate re-scores a stored resume against its job description
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	result, err := s.svc.Evaluate(r.Context(), id)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, EvaluateResponse{
		Score:    result.Score,
		Feedback: result.Feedback,
	})
}

// handleOptimize runs one optimize/re-evaluate cycle for a session
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	result, err := s.svc.Optimize(r.Context(), id)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, OptimizeResponse{
		LatexCode: result.LatexCode,
		Score:     result.Score,
		Feedback:  result.Feedback,
		Message:   result.Message,
	})
}

// handleAnalyzeSkills extracts the structured skills record for a session
func (s *Server) handleAnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	record, err := s.svc.AnalyzeSkills(r.Context(), id)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleRegenerateSkills rebuilds the LaTeX skills section from the
// stored analysis and splices it into the resume.
func (s *Server) handleRegenerateSkills(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	fragment, err := s.svc.RegenerateSkillsSection(r.Context(), id)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, RegenerateResponse{SkillsSection: fragment})
}

// handleDownloadPDF returns the assembled two-part PDF for a session
func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	artifact, err := s.svc.DownloadPDF(r.Context(), id)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="tailored_resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// pipelineError maps a pipeline error to its HTTP status and writes it
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Pipeline error: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}
