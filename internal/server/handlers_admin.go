package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/resumehub/resume-builder/internal/db"
	"github.com/resumehub/resume-builder/internal/types"
)

// grantConcurrency bounds the bulk-grant fan-out so a large user table does
// not exhaust the connection pool.
const grantConcurrency = 8

// GrantPremiumAllResponse reports the bulk grant outcome. Partial failure is
// reported, not rolled back; the upsert is idempotent so a re-run repairs the
// failed remainder.
type GrantPremiumAllResponse struct {
	Granted int `json:"granted"`
	Failed  int `json:"failed"`
}

// handleAdminStats returns the dashboard counters.
func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var stats db.AdminStats
	var err error

	if stats.Users, err = s.db.CountUsers(ctx); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if stats.PremiumUsers, err = s.db.CountPremiumUsers(ctx); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if stats.Resumes, err = s.db.CountAllResumes(ctx); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if stats.Drafts, err = s.db.CountDrafts(ctx); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if stats.Admins, err = s.db.CountAdmins(ctx); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stats)
}

// handleAssignRole upserts a role for a user.
func (s *Server) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	var req types.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	if err := s.db.AssignRole(r.Context(), userID, types.Role(req.Role)); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to assign role: "+err.Error())
		return
	}

	log.Printf("Role %s assigned to user %s", req.Role, userID)
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"user_id": userID.String(),
		"role":    req.Role,
	})
}

// handleGrantPremiumAll upserts a lifetime premium subscription for every
// registered user. One upsert per user, fanned out with bounded concurrency;
// failures are counted and reported, never rolled back. Requires an explicit
// confirm flag because there is no bulk undo.
func (s *Server) handleGrantPremiumAll(w http.ResponseWriter, r *http.Request) {
	var req types.GrantPremiumAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !req.Confirm {
		s.errorResponse(w, http.StatusBadRequest, "Bulk premium grant requires confirm: true")
		return
	}

	userIDs, err := s.db.ListUserIDs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	var granted, failed atomic.Int64
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(grantConcurrency)

	for _, userID := range userIDs {
		g.Go(func() error {
			if err := s.db.UpsertSubscription(ctx, userID, true, types.PlanLifetime); err != nil {
				log.Printf("Bulk premium grant failed for user %s: %v", userID, err)
				failed.Add(1)
				return nil // keep granting the rest
			}
			granted.Add(1)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; Wait is just the barrier

	log.Printf("Bulk premium grant finished: %d granted, %d failed", granted.Load(), failed.Load())
	s.jsonResponse(w, http.StatusOK, GrantPremiumAllResponse{
		Granted: int(granted.Load()),
		Failed:  int(failed.Load()),
	})
}
