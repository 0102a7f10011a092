// Package server exposes the operational HTTP surface: health, on-demand
// batch runs, the last batch report and the XLSX export.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/rsubramani/policy-tracker/internal/export"
	"github.com/rsubramani/policy-tracker/internal/pipeline"
	"github.com/rsubramani/policy-tracker/internal/repository"
)

type Server struct {
	logger      *slog.Logger
	batch       *pipeline.Batch
	exporter    *export.Service
	health      repository.HealthChecker
	incomingDir string

	mu         sync.Mutex
	running    bool
	lastReport *pipeline.Report
}

func New(logger *slog.Logger, batch *pipeline.Batch, exporter *export.Service, health repository.HealthChecker, incomingDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:      logger,
		batch:       batch,
		exporter:    exporter,
		health:      health,
		incomingDir: incomingDir,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/batch/run", s.handleBatchRun).Methods(http.MethodPost)
	r.HandleFunc("/batch/last", s.handleBatchLast).Methods(http.MethodGet)
	r.HandleFunc("/export/policies.xlsx", s.handleExport).Methods(http.MethodGet)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.HealthCheck(r.Context()); err != nil {
			s.logger.Error("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleBatchRun triggers a synchronous batch over the incoming folder.
// Concurrent runs are rejected; the folder move step is not re-entrant.
func (s *Server) handleBatchRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]string{"error": "batch already running"})
		return
	}
	s.running = true
	s.mu.Unlock()

	report, err := s.batch.Run(r.Context(), s.incomingDir)

	s.mu.Lock()
	s.running = false
	if report != nil {
		s.lastReport = report
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("batch run failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// RecordReport publishes a report produced outside the HTTP surface, such
// as a cron-scheduled run.
func (s *Server) RecordReport(report *pipeline.Report) {
	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()
}

func (s *Server) handleBatchLast(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	report := s.lastReport
	s.mu.Unlock()

	if report == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no batch has run yet"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	xlsx, err := s.exporter.ExportPoliciesXLSX(r.Context())
	if err != nil {
		s.logger.Error("export failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="policies.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(xlsx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
