package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/resumehub/resume-builder/internal/types"
)

// GetRole returns the role for a user. Users without a row default to the
// plain user role.
func (db *DB) GetRole(ctx context.Context, userID uuid.UUID) (types.Role, error) {
	var role string
	err := db.pool.QueryRow(ctx,
		`SELECT role FROM user_roles WHERE user_id = $1`,
		userID,
	).Scan(&role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.RoleUser, nil
		}
		return "", fmt.Errorf("failed to get role: %w", err)
	}
	return types.Role(role), nil
}

// AssignRole upserts the role for a user
func (db *DB) AssignRole(ctx context.Context, userID uuid.UUID, role types.Role) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET role = $2`,
		userID, string(role),
	)
	if err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// CountAdmins returns the number of users holding the admin role
func (db *DB) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_roles WHERE role = 'admin'`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// CountUsers returns the total number of registered users
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountAllResumes returns the total number of stored resumes
func (db *DB) CountAllResumes(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}
	return count, nil
}
