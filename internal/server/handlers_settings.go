package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// handleGetSetting returns one site-wide setting by key. The design-mode key
// is answered from the hub's cache; everything else hits the database.
func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		s.errorResponse(w, http.StatusBadRequest, "Setting key is required")
		return
	}

	if key == DesignModeKey {
		value := s.settings.DesignMode()
		if value == nil {
			s.errorResponse(w, http.StatusNotFound, "Setting not found")
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"setting_key": key, "setting_value": value})
		return
	}

	setting, err := s.db.GetSetting(r.Context(), key)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if setting == nil {
		s.errorResponse(w, http.StatusNotFound, "Setting not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, setting)
}

// handlePutSetting writes a site-wide setting. The database write fires a
// notification, so the hub and every SSE subscriber pick the change up
// without further plumbing here.
func (s *Server) handlePutSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		s.errorResponse(w, http.StatusBadRequest, "Setting key is required")
		return
	}

	var req struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Value) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "value is required")
		return
	}

	if err := s.db.UpsertSetting(r.Context(), key, req.Value); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save setting: "+err.Error())
		return
	}

	log.Printf("Site setting %s updated", key)
	s.jsonResponse(w, http.StatusOK, map[string]any{"setting_key": key, "setting_value": req.Value})
}

// handleDesignModeStream streams design-mode changes over SSE. The current
// value goes out immediately so a client never renders with a stale mode.
func (s *Server) handleDesignModeStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	updates, cancel := s.settings.Subscribe()
	defer cancel()

	if value := s.settings.DesignMode(); value != nil {
		if err := sse.WriteEvent("design_mode", value); err != nil {
			log.Printf("Error writing SSE event: %v", err)
			return
		}
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case value, ok := <-updates:
			if !ok {
				return
			}
			if err := sse.WriteEvent("design_mode", value); err != nil {
				log.Printf("Error writing SSE event: %v", err)
				return
			}
		}
	}
}
