// Package server provides the HTTP REST API over the resume pipeline.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-forge/internal/pipeline"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	svc        *pipeline.Service
	passcode   string
}

// Config holds server configuration
type Config struct {
	Port     int
	Passcode string // optional shared passcode; empty disables the check
}

// New creates a new server instance
func New(cfg Config, svc *pipeline.Service) *Server {
	s := &Server{
		svc:      svc,
		passcode: cfg.Passcode,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /resumes", s.handleGenerate)
	mux.HandleFunc("POST /resumes/{id}/evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /resumes/{id}/optimize", s.handleOptimize)
	mux.HandleFunc("POST /resumes/{id}/skills", s.handleAnalyzeSkills)
	mux.HandleFunc("POST /resumes/{id}/skills/regenerate", s.handleRegenerateSkills)
	mux.HandleFunc("GET /resumes/{id}/pdf", s.handleDownloadPDF)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.withPasscode(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // LLM calls and LaTeX compilation are slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Passcode")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withPasscode gates every route except /health behind a shared passcode
// when one is configured.
func (s *Server) withPasscode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.passcode == "" || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		supplied := r.Header.Get("X-Passcode")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.passcode)) != 1 {
			s.errorResponse(w, http.StatusUnauthorized, "invalid or missing passcode")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
