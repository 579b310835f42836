package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume inserts a new resume record for a user and returns its ID
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, name, templateKey string, resumeData []byte, sectionOrder, hiddenSections []string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, name, template_key, resume_data, section_order, hidden_sections)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		userID, name, templateKey, resumeData, sectionOrder, hiddenSections,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// UpdateResume updates an existing resume scoped to (resume id, owning user).
// Returns false when no row matched, so a save against someone else's resume
// id surfaces as not-found rather than silently inserting.
func (db *DB) UpdateResume(ctx context.Context, resumeID, userID uuid.UUID, name, templateKey string, resumeData []byte, sectionOrder, hiddenSections []string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET name = $3, template_key = $4, resume_data = $5, section_order = $6, hidden_sections = $7, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		resumeID, userID, name, templateKey, resumeData, sectionOrder, hiddenSections,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetResume retrieves a resume scoped to its owning user. Returns (nil, nil)
// when no row exists.
func (db *DB) GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, template_key, resume_data,
		        COALESCE(section_order, '{}'), COALESCE(hidden_sections, '{}'),
		        created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	).Scan(&r.ID, &r.UserID, &r.Name, &r.TemplateKey, &r.ResumeData,
		&r.SectionOrder, &r.HiddenSections, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumes returns all resumes owned by a user, most recently updated first
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, template_key, resume_data,
		        COALESCE(section_order, '{}'), COALESCE(hidden_sections, '{}'),
		        created_at, updated_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.Name, &r.TemplateKey, &r.ResumeData,
			&r.SectionOrder, &r.HiddenSections, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}

// CountResumes returns the number of resumes a user has stored. Backs the
// free-tier save gate when the count cache is cold.
func (db *DB) CountResumes(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}
	return count, nil
}

// DeleteResume removes a resume scoped to its owning user. Returns false when
// no row matched.
func (db *DB) DeleteResume(ctx context.Context, resumeID, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
