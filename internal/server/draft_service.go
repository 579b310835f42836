package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resumehub/resume-builder/internal/autosave"
	"github.com/resumehub/resume-builder/internal/db"
	"github.com/resumehub/resume-builder/internal/types"
)

// draftWriteTimeout bounds the background draft write that fires after the
// debounce window, when the originating request is long gone.
const draftWriteTimeout = 10 * time.Second

// DraftStore is the slice of the database the draft service needs.
type DraftStore interface {
	UpsertDraft(ctx context.Context, userID uuid.UUID, templateKey string, resumeData []byte, sectionOrder, hiddenSections []string) error
	GetDraft(ctx context.Context, userID uuid.UUID) (*db.Draft, error)
	DeleteDraft(ctx context.Context, userID uuid.UUID) error
}

// DraftService keeps one unsaved in-progress resume per user. Writes are
// debounced per user: rapid edits collapse into a single row overwrite, last
// write wins. A manual resume save is not serialized against a pending
// auto-save; the draft row is advisory state, never the document of record.
type DraftService struct {
	store DraftStore
	delay time.Duration

	mu         sync.Mutex
	debouncers map[uuid.UUID]*autosave.Debouncer
}

// NewDraftService creates a DraftService with the given debounce delay. A
// non-positive delay falls back to autosave.DefaultDelay.
func NewDraftService(store DraftStore, delay time.Duration) *DraftService {
	return &DraftService{
		store:      store,
		delay:      delay,
		debouncers: make(map[uuid.UUID]*autosave.Debouncer),
	}
}

// QueueSave schedules a draft overwrite for the user after the debounce
// window. A newer change inside the window replaces the pending one.
func (s *DraftService) QueueSave(userID uuid.UUID, req *types.SaveDraftRequest) error {
	doc, err := json.Marshal(&req.ResumeData)
	if err != nil {
		return fmt.Errorf("failed to encode draft document: %w", err)
	}

	templateKey := req.TemplateKey
	sectionOrder := req.SectionOrder
	hiddenSections := req.HiddenSections

	s.debouncer(userID).Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), draftWriteTimeout)
		defer cancel()

		if err := s.store.UpsertDraft(ctx, userID, templateKey, doc, sectionOrder, hiddenSections); err != nil {
			log.Printf("Draft auto-save failed for %s: %v", userID, err)
		}
	})
	return nil
}

// Get returns the user's draft, nil when none exists.
func (s *DraftService) Get(ctx context.Context, userID uuid.UUID) (*db.Draft, error) {
	return s.store.GetDraft(ctx, userID)
}

// Discard drops the user's draft and cancels any save still pending for it.
func (s *DraftService) Discard(ctx context.Context, userID uuid.UUID) error {
	s.debouncer(userID).Stop()
	return s.store.DeleteDraft(ctx, userID)
}

// Flush runs every pending draft save immediately. Called on shutdown so
// in-window edits are not lost.
func (s *DraftService) Flush() {
	s.mu.Lock()
	debouncers := make([]*autosave.Debouncer, 0, len(s.debouncers))
	for _, d := range s.debouncers {
		debouncers = append(debouncers, d)
	}
	s.mu.Unlock()

	for _, d := range debouncers {
		d.Flush()
	}
}

// debouncer returns the user's debouncer, creating it on first use.
func (s *DraftService) debouncer(userID uuid.UUID) *autosave.Debouncer {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.debouncers[userID]
	if !ok {
		d = autosave.New(s.delay)
		s.debouncers[userID] = d
	}
	return d
}
