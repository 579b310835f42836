package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/resumehub/resume-builder/internal/export"
	"github.com/resumehub/resume-builder/internal/render"
	"github.com/resumehub/resume-builder/internal/server/middleware"
	"github.com/resumehub/resume-builder/internal/types"
)

// handleSaveResume creates or updates a stored resume. A request carrying a
// resume_id is an update scoped to the owning user; without one the free-tier
// gate runs before the insert.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.resumeService.Save(r.Context(), userID, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// A successful save supersedes the unsaved draft.
	if result.Created {
		if err := s.draftService.Discard(r.Context(), userID); err != nil {
			log.Printf("Failed to discard draft after save for %s: %v", userID, err)
		}
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, result)
}

// handleListResumes returns the caller's stored resumes, most recently
// updated first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns one stored resume, scoped to the caller.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume removes a stored resume, scoped to the caller.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return
	}

	if err := s.resumeService.Delete(r.Context(), userID, resumeID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}

// handleExportResume renders a stored resume with its saved template and
// layout, prints it to PDF, and returns the bytes as a download.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	var data types.ResumeData
	if err := json.Unmarshal(resume.ResumeData, &data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stored resume document is corrupt")
		return
	}

	html, err := render.Render(&data, resume.TemplateKey, resume.SectionOrder, resume.HiddenSections)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume: "+err.Error())
		return
	}

	pdf, filename, err := s.exporter.Export(r.Context(), html, resume.Name)
	if err != nil {
		if _, ok := err.(*export.TargetError); ok {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Failed to write PDF response: %v", err)
	}
}
