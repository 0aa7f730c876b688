package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ppiankov/veridex/internal/engine"
	"github.com/ppiankov/veridex/internal/model"
)

// verifyRequest is the POST /verify payload. Strategy accepts "local",
// "cloud" or "hybrid"; anything else defaults to hybrid.
type verifyRequest struct {
	Text     string `json:"text"`
	URL      string `json:"url,omitempty"`
	Platform string `json:"platform,omitempty"`
	Author   string `json:"author,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

type statusResponse struct {
	Status              string   `json:"status"`
	ProvidersConfigured []string `json:"providers_configured"`
	CacheEnabled        bool     `json:"cache_enabled"`
}

type cacheStatsResponse struct {
	Enabled  bool    `json:"enabled"`
	TTLHours float64 `json:"ttl_hours"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text is required"})
		return
	}

	result := s.engine.Verify(r.Context(), engine.Request{
		Text:       req.Text,
		URL:        req.URL,
		Platform:   req.Platform,
		Author:     req.Author,
		Preference: model.ParseStrategyHint(req.Strategy),
	})

	writeJSON(w, http.StatusOK, result.ToResponse())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var configured []string
	for _, p := range s.providers {
		if p.IsConfigured() {
			configured = append(configured, p.Name())
		}
	}
	if configured == nil {
		configured = []string{}
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:              "running",
		ProvidersConfigured: configured,
		CacheEnabled:        s.results != nil,
	})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	stats := cacheStatsResponse{Enabled: s.results != nil}
	if s.results != nil {
		stats.TTLHours = s.results.TTL().Hours()
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "cache disabled"})
		return
	}
	if err := s.results.Clear(); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "cache cleared"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
