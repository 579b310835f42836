// Package autosave provides the debounce timer behind auto-saving: rapid
// consecutive edits collapse into a single save, last write wins.
package autosave

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period required before a pending save fires.
const DefaultDelay = 2 * time.Second

// Debouncer delays a save until its delay elapses with no new triggers.
// Each Trigger replaces the pending save and resets the timer, so at most
// one save fires per debounce window. Debouncer does not coordinate with
// saves issued outside it; a manual save may race an in-flight auto-save.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// New creates a Debouncer with the given delay. A non-positive delay falls
// back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules save to run after the delay. Any save still pending from
// an earlier trigger is suppressed.
func (d *Debouncer) Trigger(save func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = save
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// fire runs the pending save, if one survived the window.
func (d *Debouncer) fire() {
	d.mu.Lock()
	save := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if save != nil {
		save()
	}
}

// Flush runs the pending save immediately, if any, cancelling its timer.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	save := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if save != nil {
		save()
	}
}

// Stop cancels any pending save without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
