package socketio

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type recorder struct {
	mu     sync.Mutex
	mixers []string
	status int32
}

func (r *recorder) mixer(serial string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mixers = append(r.mixers, serial)
}

func (r *recorder) whole() { atomic.AddInt32(&r.status, 1) }

func (r *recorder) got() ([]string, int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.mixers...), atomic.LoadInt32(&r.status)
}

func TestDebouncerRapidMixerUpdatesCollapseToOne(t *testing.T) {
	rec := &recorder{}
	d := NewBroadcastDebouncer(50*time.Millisecond, rec.mixer, rec.whole)
	defer d.Stop()

	// Simulate a fader being dragged
	for i := 0; i < 20; i++ {
		d.TriggerMixer("S1")
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)

	mixers, whole := rec.got()
	if len(mixers) != 1 || mixers[0] != "S1" {
		t.Errorf("expected one push for S1, got %v", mixers)
	}
	if whole != 0 {
		t.Errorf("expected no status push, got %d", whole)
	}
}

func TestDebouncerMixersFlushInSerialOrder(t *testing.T) {
	rec := &recorder{}
	d := NewBroadcastDebouncer(50*time.Millisecond, rec.mixer, rec.whole)
	defer d.Stop()

	d.TriggerMixer("S2")
	d.TriggerMixer("S1")
	d.TriggerMixer("S2")

	time.Sleep(120 * time.Millisecond)

	mixers, _ := rec.got()
	if len(mixers) != 2 || mixers[0] != "S1" || mixers[1] != "S2" {
		t.Errorf("expected [S1 S2], got %v", mixers)
	}
}

func TestDebouncerStatusSubsumesMixers(t *testing.T) {
	rec := &recorder{}
	d := NewBroadcastDebouncer(50*time.Millisecond, rec.mixer, rec.whole)
	defer d.Stop()

	d.TriggerMixer("S1")
	d.TriggerStatus()
	d.TriggerMixer("S2")

	time.Sleep(120 * time.Millisecond)

	mixers, whole := rec.got()
	if whole != 1 {
		t.Errorf("expected 1 status push, got %d", whole)
	}
	if len(mixers) != 0 {
		t.Errorf("expected no mixer pushes, got %v", mixers)
	}
}

func TestDebouncerForgetDropsPendingMixer(t *testing.T) {
	rec := &recorder{}
	d := NewBroadcastDebouncer(50*time.Millisecond, rec.mixer, rec.whole)
	defer d.Stop()

	d.TriggerMixer("S1")
	d.TriggerMixer("S2")
	d.Forget("S1")

	time.Sleep(120 * time.Millisecond)

	mixers, _ := rec.got()
	if len(mixers) != 1 || mixers[0] != "S2" {
		t.Errorf("expected [S2], got %v", mixers)
	}
}

func TestDebouncerSeparateWindowsFireIndependently(t *testing.T) {
	rec := &recorder{}
	d := NewBroadcastDebouncer(50*time.Millisecond, rec.mixer, rec.whole)
	defer d.Stop()

	d.TriggerStatus()
	time.Sleep(120 * time.Millisecond)
	d.TriggerStatus()
	time.Sleep(120 * time.Millisecond)

	if _, whole := rec.got(); whole != 2 {
		t.Errorf("expected 2 status pushes for separate windows, got %d", whole)
	}
}

func TestDebouncerStopPreventsCallbacks(t *testing.T) {
	rec := &recorder{}
	d := NewBroadcastDebouncer(50*time.Millisecond, rec.mixer, rec.whole)

	d.TriggerMixer("S1")
	d.Stop()
	d.TriggerStatus()

	time.Sleep(120 * time.Millisecond)

	mixers, whole := rec.got()
	if len(mixers) != 0 || whole != 0 {
		t.Errorf("expected no callbacks after stop, got %v and %d", mixers, whole)
	}
}
