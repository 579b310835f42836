package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/resumehub/resume-builder/internal/server/middleware"
	"github.com/resumehub/resume-builder/internal/types"
)

// maxUploadBytes caps the extract endpoint's PDF upload.
const maxUploadBytes = 10 << 20

// ExtractResponse carries the structured document parsed from an uploaded
// PDF. FallbackUsed tells the client the sample was substituted because the
// model output could not be parsed.
type ExtractResponse struct {
	ResumeData   *types.ResumeData `json:"resume_data"`
	FallbackUsed bool              `json:"fallback_used"`
}

// handleEnhance polishes free-form resume text. Premium feature: free-tier
// callers get the plan-limit error.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.aiClient == nil {
		err := &ErrUpstreamUnavailable{Service: "AI enhancement"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	premium, err := s.db.IsPremium(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !premium {
		s.errorResponse(w, http.StatusPaymentRequired, "AI enhancement requires a premium plan")
		return
	}

	var req types.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	suggestion, err := s.aiClient.EnhanceText(r.Context(), req.Prompt)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Enhancement failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.EnhanceResponse{Suggestion: suggestion})
}

// handleExtract parses an uploaded PDF resume into a structured document.
// Malformed model output is not an error: the canned sample comes back with
// fallback_used set so the builder still opens populated.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.aiClient == nil {
		err := &ErrUpstreamUnavailable{Service: "AI extraction"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A PDF file upload is required")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF uploads are supported")
		return
	}

	pdf, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}
	if len(pdf) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Uploaded file is empty")
		return
	}

	data, fallback, err := s.aiClient.ExtractResume(r.Context(), pdf)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Extraction failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ExtractResponse{ResumeData: data, FallbackUsed: fallback})
}
