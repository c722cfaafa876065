package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vibelux/roomcfd/pkg/analytics"
	"github.com/vibelux/roomcfd/pkg/solver"
	"github.com/vibelux/roomcfd/pkg/spec"
	"github.com/vibelux/roomcfd/pkg/validation"
)

// Server is the local development server: JSON endpoints for the spec,
// validation, and full solves, plus a websocket that streams residuals
// while a solve runs.
type Server struct {
	projectPath string
	settings    Settings
	log         *logrus.Logger
	upgrader    websocket.Upgrader
}

// New creates a server for the given project directory.
func New(projectPath string, settings Settings, log *logrus.Logger) *Server {
	return &Server{
		projectPath: projectPath,
		settings:    settings,
		log:         log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Start launches the HTTP server. It blocks until the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/solve", s.handleSolve)
	mux.HandleFunc("GET /ws", s.handleLive)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.settings.Port)
	s.log.WithFields(logrus.Fields{
		"addr":    addr,
		"project": s.projectPath,
	}).Info("roomcfd server starting")

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>roomcfd</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>roomcfd</h1>
<p>POST /api/solve to run the scenario; connect to /ws for live residuals.</p>
</div>
</body></html>`)
}

func (s *Server) loadScenario() (*spec.SimulationConfig, *validation.Report, error) {
	cfg, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, validation.ValidateSchema(cfg), nil
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	cfg, _, err := s.loadScenario()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, cfg)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	_, report, err := s.loadScenario()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, report)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	cfg, report, err := s.loadScenario()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if !report.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}

	results, err := analytics.Run(r.Context(), cfg,
		solver.Options{Logger: s.log},
		analytics.Options{Streamlines: s.settings.Streamlines})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, results)
}

// liveFrame is one websocket message: a per-iteration progress update
// or the final summary.
type liveFrame struct {
	Type      string  `json:"type"`
	Iteration int     `json:"iteration,omitempty"`
	Residual  float64 `json:"residual,omitempty"`

	Converged bool               `json:"converged,omitempty"`
	Metrics   *analytics.Metrics `json:"metrics,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	cfg, report, err := s.loadScenario()
	if err != nil {
		conn.WriteJSON(liveFrame{Type: "error", Error: err.Error()})
		return
	}
	if !report.Valid {
		conn.WriteJSON(liveFrame{Type: "error", Error: report.Summary})
		return
	}

	results, err := analytics.Run(r.Context(), cfg,
		solver.Options{
			Logger: s.log,
			Progress: func(iteration int, residual float64) {
				frame := liveFrame{Type: "progress", Iteration: iteration, Residual: residual}
				if err := conn.WriteJSON(frame); err != nil {
					s.log.WithError(err).Debug("dropping live frame")
				}
			},
		},
		analytics.Options{Streamlines: s.settings.Streamlines})
	if err != nil {
		conn.WriteJSON(liveFrame{Type: "error", Error: err.Error()})
		return
	}

	conn.WriteJSON(liveFrame{
		Type:      "done",
		Converged: results.Converged,
		Metrics:   &results.Metrics,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
