package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertDraft overwrites the user's unsaved in-progress resume. There is at
// most one draft per user; every local change replaces it wholesale.
func (db *DB) UpsertDraft(ctx context.Context, userID uuid.UUID, templateKey string, resumeData []byte, sectionOrder, hiddenSections []string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_drafts (user_id, template_key, resume_data, section_order, hidden_sections)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET template_key = $2, resume_data = $3, section_order = $4, hidden_sections = $5, updated_at = NOW()`,
		userID, templateKey, resumeData, sectionOrder, hiddenSections,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// GetDraft retrieves the user's draft. Returns (nil, nil) when no draft exists.
func (db *DB) GetDraft(ctx context.Context, userID uuid.UUID) (*Draft, error) {
	var d Draft
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, template_key, resume_data,
		        COALESCE(section_order, '{}'), COALESCE(hidden_sections, '{}'), updated_at
		 FROM resume_drafts WHERE user_id = $1`,
		userID,
	).Scan(&d.UserID, &d.TemplateKey, &d.ResumeData, &d.SectionOrder, &d.HiddenSections, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return &d, nil
}

// DeleteDraft removes the user's draft, typically after a successful save
func (db *DB) DeleteDraft(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resume_drafts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// CountDrafts returns the number of draft rows. Admin dashboard counter.
func (db *DB) CountDrafts(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resume_drafts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count drafts: %w", err)
	}
	return count, nil
}
