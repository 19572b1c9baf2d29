package server

import (
	"encoding/json"
	"net/http"
	"time"

	"soberania-mesh/phiguard/pkg/guard"
	"soberania-mesh/phiguard/pkg/patterns"
)

// processRequest is the body of POST /v1/messages.
type processRequest struct {
	Text      string         `json:"text"`
	Direction string         `json:"direction"`
	Language  string         `json:"language"`
	Metadata  map[string]any `json:"metadata"`
}

// lockdownRequest is the body of POST /v1/lockdown.
type lockdownRequest struct {
	Reason string `json:"reason"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleProcessMessage(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	dir, ok := guard.ParseDirection(req.Direction)
	if !ok {
		writeError(w, http.StatusBadRequest, "direction must be inbound or outbound")
		return
	}

	lang, err := patterns.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.guard.ProcessMessage(req.Text, dir, lang, req.Metadata)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.guard.Status())
}

func (s *Server) handleTriggerLockdown(w http.ResponseWriter, r *http.Request) {
	var req lockdownRequest
	// An empty body is fine; the reason then defaults.
	_ = json.NewDecoder(r.Body).Decode(&req)

	writeJSON(w, http.StatusOK, s.guard.TriggerLockdown(req.Reason))
}

func (s *Server) handleReleaseLockdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.guard.ReleaseLockdown())
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.guard.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"status": "RESET"})
}

func (s *Server) handleCounterSpeech(w http.ResponseWriter, r *http.Request) {
	lang, err := patterns.ParseLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": s.guard.CounterSpeech(lang),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
