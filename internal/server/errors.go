package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-forge/internal/latex"
	"github.com/jonathan/resume-forge/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *pipeline.ValidationError
		notFoundErr    *pipeline.NotFoundError
		noAnalysisErr  *pipeline.NoAnalysisError
		unavailableErr *pipeline.ModelUnavailableError
		generationErr  *pipeline.GenerationError
		compileErr     *latex.CompilationError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &noAnalysisErr):
		return http.StatusConflict
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &generationErr):
		return http.StatusBadGateway
	case errors.As(err, &compileErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
