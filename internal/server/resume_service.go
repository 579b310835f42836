package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/resumehub/resume-builder/internal/cache"
	"github.com/resumehub/resume-builder/internal/db"
	"github.com/resumehub/resume-builder/internal/schemas"
	"github.com/resumehub/resume-builder/internal/types"
)

// ResumeStore is the slice of the database the resume service needs. *db.DB
// satisfies it; tests provide fakes.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, name, templateKey string, resumeData []byte, sectionOrder, hiddenSections []string) (uuid.UUID, error)
	UpdateResume(ctx context.Context, resumeID, userID uuid.UUID, name, templateKey string, resumeData []byte, sectionOrder, hiddenSections []string) (bool, error)
	GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]db.Resume, error)
	CountResumes(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteResume(ctx context.Context, resumeID, userID uuid.UUID) (bool, error)
	IsPremium(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ResumeService enforces the save rules: updates stay scoped to the owning
// user, first-time saves pass the free-tier gate, and every successful write
// invalidates the count cache.
type ResumeService struct {
	store  ResumeStore
	counts cache.Counts
}

// NewResumeService creates a ResumeService.
func NewResumeService(store ResumeStore, counts cache.Counts) *ResumeService {
	return &ResumeService{store: store, counts: counts}
}

// SaveResult reports the outcome of a save.
type SaveResult struct {
	ResumeID uuid.UUID `json:"resume_id"`
	Created  bool      `json:"created"`
}

// Save stores a resume for the user. When req.ResumeID is set the save is an
// update scoped to (resume id, user id) and never inserts; otherwise the
// free-tier gate runs before the create.
func (s *ResumeService) Save(ctx context.Context, userID uuid.UUID, req *types.SaveResumeRequest) (*SaveResult, error) {
	if userID == uuid.Nil {
		return nil, &ErrNotAuthenticated{}
	}

	doc, err := json.Marshal(&req.ResumeData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume document: %w", err)
	}
	if err := schemas.ValidateResumeData(doc); err != nil {
		return nil, &ErrValidation{Field: "resume_data", Message: err.Error()}
	}

	if req.ResumeID != "" {
		resumeID, err := uuid.Parse(req.ResumeID)
		if err != nil {
			return nil, &ErrValidation{Field: "resume_id", Message: "must be a valid UUID"}
		}
		matched, err := s.store.UpdateResume(ctx, resumeID, userID, req.Name, req.TemplateKey, doc, req.SectionOrder, req.HiddenSections)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, &ErrResumeNotFound{ResumeID: resumeID}
		}
		s.invalidateCount(ctx, userID)
		return &SaveResult{ResumeID: resumeID, Created: false}, nil
	}

	premium, err := s.store.IsPremium(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan: %w", err)
	}
	if !premium {
		count, err := s.resumeCount(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check resume count: %w", err)
		}
		if count >= types.FreeTierResumeLimit {
			return nil, &ErrPlanLimit{Limit: types.FreeTierResumeLimit}
		}
	}

	resumeID, err := s.store.CreateResume(ctx, userID, req.Name, req.TemplateKey, doc, req.SectionOrder, req.HiddenSections)
	if err != nil {
		return nil, err
	}
	s.invalidateCount(ctx, userID)
	return &SaveResult{ResumeID: resumeID, Created: true}, nil
}

// Delete removes a resume scoped to the owning user.
func (s *ResumeService) Delete(ctx context.Context, userID, resumeID uuid.UUID) error {
	matched, err := s.store.DeleteResume(ctx, resumeID, userID)
	if err != nil {
		return err
	}
	if !matched {
		return &ErrResumeNotFound{ResumeID: resumeID}
	}
	s.invalidateCount(ctx, userID)
	return nil
}

// resumeCount reads the stored-resume count through the cache, falling back
// to a COUNT query on a miss.
func (s *ResumeService) resumeCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if n, err := s.counts.Get(ctx, userID); err == nil {
		return n, nil
	} else if err != cache.ErrMiss {
		// A broken cache should not block saving; fall through to the DB.
		log.Printf("Resume count cache read failed for %s: %v", userID, err)
	}

	n, err := s.store.CountResumes(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.counts.Set(ctx, userID, n); err != nil {
		log.Printf("Resume count cache write failed for %s: %v", userID, err)
	}
	return n, nil
}

// invalidateCount drops the cached count after a write so the next gate
// check refetches.
func (s *ResumeService) invalidateCount(ctx context.Context, userID uuid.UUID) {
	if err := s.counts.Invalidate(ctx, userID); err != nil {
		log.Printf("Resume count cache invalidation failed for %s: %v", userID, err)
	}
}
