// Package api - thin HTTP layer over the pricing engine.
// The API is only responsible for input ingestion, engine orchestration,
// and output serialization; it never performs cost logic itself.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"genmaint-cost/core/engine"
	"genmaint-cost/internal/errors"
	"genmaint-cost/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
	log     *zap.Logger
}

// NewServer creates an API server over a pricing engine
func NewServer(eng *engine.Engine, version string) *Server {
	s := &Server{
		engine:  eng,
		mux:     http.NewServeMux(),
		version: version,
		log:     logging.Named("api"),
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	s.mux.HandleFunc("GET /api/settings", s.handleSettings)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start runs the server on the given address
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
	s.log.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

// handleCalculate handles POST /api/calculate
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	engineReq, err := req.ToEngineRequest(s.engine.Book().DefaultFrequencies())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	result, err := s.engine.Calculate(engineReq)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.log.Info("calculation served",
		zap.Int("generators", len(req.Generators)),
		zap.Duration("duration", time.Since(start)))

	s.writeJSON(w, http.StatusOK, NewCalculateResponse(result, engineReq.Selection))
}

// handleSettings handles GET /api/settings: the active pricing book
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Book())
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion handles GET /api/version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := string(errors.TypeInternal)

	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeInput, errors.TypeUnclassifiable:
			status = http.StatusBadRequest
		case errors.TypeConfig:
			status = http.StatusUnprocessableEntity
		case errors.TypeNotFound:
			status = http.StatusNotFound
		}
	}

	s.writeError(w, code, err.Error(), status)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.log.Warn("request failed",
		zap.String("code", code),
		zap.Int("status", status))
	s.writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}
