package socketio

import (
	"sort"
	"sync"
	"time"
)

// BroadcastDebouncer collapses rapid registry events into batched broadcasts.
// Any number of updates to one mixer within the window produce a single
// mixer push; a daemon-level change (files, attach) within the window turns
// the batch into one full status push, which already carries every mixer.
type BroadcastDebouncer struct {
	window         time.Duration
	mixerCallback  func(serial string)
	statusCallback func()

	mu            sync.Mutex
	pendingMixers map[string]struct{}
	pendingStatus bool
	timer         *time.Timer
	stopped       bool
}

// NewBroadcastDebouncer creates a debouncer with the given window duration.
func NewBroadcastDebouncer(window time.Duration, mixerCallback func(serial string), statusCallback func()) *BroadcastDebouncer {
	return &BroadcastDebouncer{
		window:         window,
		mixerCallback:  mixerCallback,
		statusCallback: statusCallback,
		pendingMixers:  make(map[string]struct{}),
	}
}

// TriggerMixer records a change to one mixer.
func (d *BroadcastDebouncer) TriggerMixer(serial string) {
	d.trigger(func() { d.pendingMixers[serial] = struct{}{} })
}

// TriggerStatus records a daemon-level change.
func (d *BroadcastDebouncer) TriggerStatus() {
	d.trigger(func() { d.pendingStatus = true })
}

func (d *BroadcastDebouncer) trigger(mark func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	mark()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

// Forget drops a pending push for a mixer that has gone away.
func (d *BroadcastDebouncer) Forget(serial string) {
	d.mu.Lock()
	delete(d.pendingMixers, serial)
	d.mu.Unlock()
}

func (d *BroadcastDebouncer) flush() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	doStatus := d.pendingStatus
	serials := make([]string, 0, len(d.pendingMixers))
	for s := range d.pendingMixers {
		serials = append(serials, s)
	}
	d.pendingStatus = false
	d.pendingMixers = make(map[string]struct{})
	d.mu.Unlock()

	if doStatus {
		if d.statusCallback != nil {
			d.statusCallback()
		}
		return
	}
	if d.mixerCallback == nil {
		return
	}
	sort.Strings(serials)
	for _, s := range serials {
		d.mixerCallback(s)
	}
}

// Stop prevents any further callbacks from firing.
func (d *BroadcastDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pendingStatus = false
	d.pendingMixers = make(map[string]struct{})
}
