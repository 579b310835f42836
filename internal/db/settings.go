package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
)

// settingsChannel is the Postgres NOTIFY channel fired on every site-setting
// write. The payload is the setting key.
const settingsChannel = "site_settings_changed"

// GetSetting retrieves a site-wide setting by key. Returns (nil, nil) when
// the key has never been written.
func (db *DB) GetSetting(ctx context.Context, key string) (*SiteSetting, error) {
	var s SiteSetting
	err := db.pool.QueryRow(ctx,
		`SELECT setting_key, setting_value, updated_at
		 FROM site_settings WHERE setting_key = $1`,
		key,
	).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return &s, nil
}

// UpsertSetting writes a site-wide setting and notifies watchers.
func (db *DB) UpsertSetting(ctx context.Context, key string, value []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO site_settings (setting_key, setting_value)
		 VALUES ($1, $2)
		 ON CONFLICT (setting_key) DO UPDATE SET setting_value = $2, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	if _, err := db.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, settingsChannel, key); err != nil {
		// The write succeeded; watchers fall back to polling.
		log.Printf("Failed to notify setting change for %s: %v", key, err)
	}
	return nil
}

// WatchSettings subscribes to site-setting change notifications. It returns a
// channel of changed setting keys that closes when ctx is cancelled. The
// subscription holds one dedicated connection from the pool.
func (db *DB) WatchSettings(ctx context.Context) (<-chan string, error) {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire listen connection: %w", err)
	}

	if _, err := conn.Exec(ctx, `LISTEN `+settingsChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on %s: %w", settingsChannel, err)
	}

	keys := make(chan string)
	go func() {
		defer close(keys)
		defer conn.Release()
		for {
			notification, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Settings watch ended: %v", err)
				return
			}
			select {
			case keys <- notification.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return keys, nil
}
