package server

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/resumehub/resume-builder/internal/db"
)

// DesignModeKey is the site setting watched in realtime. Other settings are
// read on demand.
const DesignModeKey = "design_mode"

// settingsPollInterval is the fallback refresh cadence when notifications
// are delayed or the listen connection drops.
const settingsPollInterval = time.Minute

// SettingsStore is the slice of the database the settings hub needs.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (*db.SiteSetting, error)
	UpsertSetting(ctx context.Context, key string, value []byte) error
	WatchSettings(ctx context.Context) (<-chan string, error)
}

// SettingsHub caches the design-mode setting process-wide and fans changes
// out to SSE subscribers. Many readers, few writers: handlers read the
// cached value, admin writes go through the store and arrive back here via
// the change notification (or the poll).
type SettingsHub struct {
	store SettingsStore

	mu         sync.RWMutex
	designMode json.RawMessage
	subs       map[chan json.RawMessage]struct{}

	cancel context.CancelFunc
}

// NewSettingsHub creates a hub. Call Start to begin watching.
func NewSettingsHub(store SettingsStore) *SettingsHub {
	return &SettingsHub{
		store: store,
		subs:  make(map[chan json.RawMessage]struct{}),
	}
}

// Start loads the current value and begins the watch/poll loop.
func (h *SettingsHub) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel

	if err := h.refresh(ctx); err != nil {
		cancel()
		return err
	}

	keys, err := h.store.WatchSettings(ctx)
	if err != nil {
		// Notifications are an optimization; polling still keeps the value
		// fresh.
		log.Printf("Settings watch unavailable, relying on polling: %v", err)
		keys = nil
	}

	go h.loop(ctx, keys)
	return nil
}

// Stop ends the watch loop.
func (h *SettingsHub) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
}

// DesignMode returns the cached design-mode value, nil when unset.
func (h *SettingsHub) DesignMode() json.RawMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.designMode
}

// Subscribe registers for design-mode changes. The returned cancel func must
// be called when the subscriber goes away.
func (h *SettingsHub) Subscribe() (<-chan json.RawMessage, func()) {
	ch := make(chan json.RawMessage, 4)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *SettingsHub) loop(ctx context.Context, keys <-chan string) {
	ticker := time.NewTicker(settingsPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-keys:
			if !ok {
				keys = nil // watch ended; keep polling
				continue
			}
			if key != DesignModeKey {
				continue
			}
			if err := h.refresh(ctx); err != nil {
				log.Printf("Failed to refresh %s: %v", DesignModeKey, err)
			}
		case <-ticker.C:
			if err := h.refresh(ctx); err != nil {
				log.Printf("Failed to poll %s: %v", DesignModeKey, err)
			}
		}
	}
}

// refresh re-reads the setting and notifies subscribers when it changed.
func (h *SettingsHub) refresh(ctx context.Context) error {
	setting, err := h.store.GetSetting(ctx, DesignModeKey)
	if err != nil {
		return err
	}

	var value json.RawMessage
	if setting != nil {
		value = json.RawMessage(setting.Value)
	}

	h.mu.Lock()
	changed := string(value) != string(h.designMode)
	h.designMode = value
	var targets []chan json.RawMessage
	if changed {
		for ch := range h.subs {
			targets = append(targets, ch)
		}
	}
	h.mu.Unlock()

	for _, ch := range targets {
		select {
		case ch <- value:
		default:
			// Slow subscriber; it will catch up on the next change or poll.
		}
	}
	return nil
}
