package autosave

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCollapsesRapidTriggers(t *testing.T) {
	d := New(30 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		i := int32(i)
		d.Trigger(func() {
			fired.Add(1)
			last.Store(i)
		})
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(5), last.Load(), "last write wins")

	// No further fires after the window
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerFiresAgainAfterWindow(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger(func() { fired.Add(1) })
	require.Eventually(t, func() bool { return fired.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncerFlush(t *testing.T) {
	d := New(time.Hour)
	defer d.Stop()

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })

	d.Flush()
	assert.Equal(t, int32(1), fired.Load(), "flush runs the pending save immediately")

	// Flush with nothing pending is a no-op
	d.Flush()
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := New(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestNewDefaultsNonPositiveDelay(t *testing.T) {
	d := New(0)
	assert.Equal(t, DefaultDelay, d.delay)

	d = New(-time.Second)
	assert.Equal(t, DefaultDelay, d.delay)
}
