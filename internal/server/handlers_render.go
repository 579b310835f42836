package server

import (
	"encoding/json"
	"net/http"

	"github.com/resumehub/resume-builder/internal/render"
	"github.com/resumehub/resume-builder/internal/types"
)

// PreviewResponse carries the rendered document for the live preview pane.
type PreviewResponse struct {
	HTML string `json:"html"`
}

// handlePreview renders a resume document without persisting anything. The
// rendering is deterministic, so clients may cache on the request body.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req types.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	html, err := render.Render(&req.ResumeData, req.TemplateKey, req.SectionOrder, req.HiddenSections)
	if err != nil {
		if _, ok := err.(*render.UnknownTemplateError); ok {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, PreviewResponse{HTML: html})
}

// handleListTemplates returns the fixed template set with per-template
// default section orders, so the picker never hardcodes them.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	templates := make([]map[string]any, 0, len(render.TemplateKeys))
	for _, key := range render.TemplateKeys {
		templates = append(templates, map[string]any{
			"key":           key,
			"section_order": render.DefaultSectionOrder(key),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": templates})
}
