package server

import (
	"encoding/json"
	"net/http"

	"github.com/resumehub/resume-builder/internal/server/middleware"
	"github.com/resumehub/resume-builder/internal/types"
)

// handleGetDraft returns the caller's unsaved in-progress resume. 404 when
// there is none; the builder then opens empty.
func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	draft, err := s.draftService.Get(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if draft == nil {
		s.errorResponse(w, http.StatusNotFound, "No draft found")
		return
	}

	s.jsonResponse(w, http.StatusOK, draft)
}

// handlePutDraft queues a debounced overwrite of the caller's draft. The
// write lands after the quiet period; changes inside the window collapse into
// one save. 202 because the row is not written yet when we respond.
func (s *Server) handlePutDraft(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := s.draftService.QueueSave(userID, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// handleDeleteDraft drops the caller's draft explicitly.
func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.draftService.Discard(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Draft discarded"})
}
