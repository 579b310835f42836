package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetSubscription returns the subscription row for a user. Returns (nil, nil)
// when the user has never had one; callers treat that as non-premium.
func (db *DB) GetSubscription(ctx context.Context, userID uuid.UUID) (*Subscription, error) {
	var s Subscription
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, is_premium, COALESCE(plan_type, ''), updated_at
		 FROM subscriptions WHERE user_id = $1`,
		userID,
	).Scan(&s.UserID, &s.IsPremium, &s.PlanType, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &s, nil
}

// IsPremium reports whether the user has an active premium entitlement
func (db *DB) IsPremium(ctx context.Context, userID uuid.UUID) (bool, error) {
	sub, err := db.GetSubscription(ctx, userID)
	if err != nil {
		return false, err
	}
	return sub != nil && sub.IsPremium, nil
}

// UpsertSubscription sets the premium flag and plan for a user. Idempotent,
// so the admin bulk grant can safely be re-run after partial failure.
func (db *DB) UpsertSubscription(ctx context.Context, userID uuid.UUID, isPremium bool, planType string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO subscriptions (user_id, is_premium, plan_type)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET is_premium = $2, plan_type = $3, updated_at = NOW()`,
		userID, isPremium, planType,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

// CountPremiumUsers returns the number of users with an active premium flag
func (db *DB) CountPremiumUsers(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE is_premium = TRUE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count premium users: %w", err)
	}
	return count, nil
}
