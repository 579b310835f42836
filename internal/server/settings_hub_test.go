package server

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumehub/resume-builder/internal/db"
)

// fakeSettingsStore is an in-memory SettingsStore with a controllable
// notification channel.
type fakeSettingsStore struct {
	mu       sync.Mutex
	settings map[string][]byte
	notify   chan string
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{
		settings: make(map[string][]byte),
		notify:   make(chan string, 8),
	}
}

func (f *fakeSettingsStore) GetSetting(_ context.Context, key string) (*db.SiteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.settings[key]
	if !ok {
		return nil, nil
	}
	return &db.SiteSetting{Key: key, Value: value}, nil
}

func (f *fakeSettingsStore) UpsertSetting(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	f.settings[key] = value
	f.mu.Unlock()
	f.notify <- key
	return nil
}

func (f *fakeSettingsStore) WatchSettings(_ context.Context) (<-chan string, error) {
	return f.notify, nil
}

func TestSettingsHubInitialLoad(t *testing.T) {
	store := newFakeSettingsStore()
	store.settings[DesignModeKey] = []byte(`"classic"`)

	hub := NewSettingsHub(store)
	require.NoError(t, hub.Start(context.Background()))
	defer hub.Stop()

	assert.Equal(t, json.RawMessage(`"classic"`), hub.DesignMode())
}

func TestSettingsHubUnsetValue(t *testing.T) {
	hub := NewSettingsHub(newFakeSettingsStore())
	require.NoError(t, hub.Start(context.Background()))
	defer hub.Stop()

	assert.Nil(t, hub.DesignMode())
}

func TestSettingsHubBroadcastsChanges(t *testing.T) {
	store := newFakeSettingsStore()
	hub := NewSettingsHub(store)
	require.NoError(t, hub.Start(context.Background()))
	defer hub.Stop()

	updates, cancel := hub.Subscribe()
	defer cancel()

	require.NoError(t, store.UpsertSetting(context.Background(), DesignModeKey, []byte(`"dark"`)))

	select {
	case value := <-updates:
		assert.Equal(t, json.RawMessage(`"dark"`), value)
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}

	assert.Equal(t, json.RawMessage(`"dark"`), hub.DesignMode())
}

func TestSettingsHubIgnoresOtherKeys(t *testing.T) {
	store := newFakeSettingsStore()
	hub := NewSettingsHub(store)
	require.NoError(t, hub.Start(context.Background()))
	defer hub.Stop()

	updates, cancel := hub.Subscribe()
	defer cancel()

	require.NoError(t, store.UpsertSetting(context.Background(), "maintenance_banner", []byte(`"soon"`)))

	select {
	case <-updates:
		t.Fatal("unrelated setting must not reach design-mode subscribers")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSettingsHubCancelledSubscriber(t *testing.T) {
	store := newFakeSettingsStore()
	hub := NewSettingsHub(store)
	require.NoError(t, hub.Start(context.Background()))
	defer hub.Stop()

	updates, cancel := hub.Subscribe()
	cancel()

	require.NoError(t, store.UpsertSetting(context.Background(), DesignModeKey, []byte(`"dark"`)))

	select {
	case _, ok := <-updates:
		if ok {
			t.Fatal("cancelled subscriber must not receive updates")
		}
	case <-time.After(100 * time.Millisecond):
	}
}
