// Package daemon owns the live status of every attached mixer. Each device
// sits behind its own lock: mutations are applied atomically and snapshots are
// deep copies, so readers never see a half-applied update.
package daemon

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/edumarques81/mixerd/internal/domain/status"
)

var (
	ErrNotAttached     = errors.New("device not attached")
	ErrAlreadyAttached = errors.New("device already attached")

	errNilUpdate       = errors.New("nil update function")
	deviceKeyNamespace = uuid.MustParse("0f6b3c2e-6f0c-4d4b-9a59-2f3f5d0e7a11")
)

// EventKind says what changed.
type EventKind int

const (
	EventAttached EventKind = iota
	EventUpdated
	EventDetached
	EventFilesChanged
)

func (k EventKind) String() string {
	switch k {
	case EventAttached:
		return "attached"
	case EventUpdated:
		return "updated"
	case EventDetached:
		return "detached"
	case EventFilesChanged:
		return "files_changed"
	}
	return "unknown"
}

// Event is delivered to listeners after the change is visible to readers.
// Serial is empty for EventFilesChanged.
type Event struct {
	Kind   EventKind
	Serial string
}

// Listener is called synchronously from the goroutine that made the change,
// outside any registry lock. It must not block.
type Listener func(Event)

type device struct {
	mu         sync.RWMutex
	status     *status.MixerStatus
	attachedAt time.Time
}

// Registry is the daemon-wide aggregate: one device entry per attached mixer
// plus the resource paths and file inventory.
type Registry struct {
	version string

	mu      sync.RWMutex
	devices map[string]*device
	paths   status.Paths
	files   status.Files

	listenersMu sync.RWMutex
	listeners   []Listener
}

// NewRegistry returns a registry with no devices and an empty inventory.
func NewRegistry(version string) *Registry {
	return &Registry{
		version: version,
		devices: make(map[string]*device),
		files:   status.NewFiles(),
	}
}

// DeviceKey is the map key for a device: its serial number, else the stable
// USB identifier, else a name-based UUID derived from its USB location.
func DeviceKey(hw status.HardwareStatus) string {
	if hw.SerialNumber != "" {
		return hw.SerialNumber
	}
	if id := hw.USBDevice.Identifier; id != nil && *id != "" {
		return *id
	}
	loc := fmt.Sprintf("%s/%d/%d", hw.USBDevice.ProductName, hw.USBDevice.BusNumber, hw.USBDevice.Address)
	return uuid.NewSHA1(deviceKeyNamespace, []byte(loc)).String()
}

// Subscribe registers l for every subsequent event.
func (r *Registry) Subscribe(l Listener) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.listeners = append(r.listeners, l)
}

func (r *Registry) notify(ev Event) {
	r.listenersMu.RLock()
	ls := make([]Listener, len(r.listeners))
	copy(ls, r.listeners)
	r.listenersMu.RUnlock()

	for _, l := range ls {
		l(ev)
	}
}

// Attach creates the status for a newly connected device, defaulted for its
// variant, and returns the key it is stored under.
func (r *Registry) Attach(hw status.HardwareStatus) (string, error) {
	key := DeviceKey(hw)

	r.mu.Lock()
	if _, exists := r.devices[key]; exists {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrAlreadyAttached, key)
	}
	r.devices[key] = &device{
		status:     status.NewMixerStatus(hw),
		attachedAt: time.Now(),
	}
	r.mu.Unlock()

	log.Info().
		Str("serial", key).
		Str("variant", hw.DeviceType.String()).
		Str("firmware", hw.Versions.Firmware.String()).
		Msg("Mixer attached")

	r.notify(Event{Kind: EventAttached, Serial: key})
	return key, nil
}

// Detach drops the status of a disconnected device.
func (r *Registry) Detach(serial string) error {
	r.mu.Lock()
	d, ok := r.devices[serial]
	if ok {
		delete(r.devices, serial)
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAttached, serial)
	}

	log.Info().
		Str("serial", serial).
		Dur("attached_for", time.Since(d.attachedAt)).
		Msg("Mixer detached")

	r.notify(Event{Kind: EventDetached, Serial: serial})
	return nil
}

func (r *Registry) device(serial string) (*device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[serial]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAttached, serial)
	}
	return d, nil
}

// Update applies fn to the device's status as one atomic change. fn works on
// a private copy; if it returns an error, or leaves the copy in a state that
// status.Validate rejects, nothing is applied. Otherwise the copy replaces
// the live status before the write lock is released, so every field fn
// touches becomes visible to readers at the same instant.
func (r *Registry) Update(serial string, fn func(m *status.MixerStatus) error) error {
	if fn == nil {
		return errNilUpdate
	}
	d, err := r.device(serial)
	if err != nil {
		return err
	}

	if err := d.apply(fn); err != nil {
		return fmt.Errorf("update %s: %w", serial, err)
	}

	log.Debug().Str("serial", serial).Msg("Mixer status updated")
	r.notify(Event{Kind: EventUpdated, Serial: serial})
	return nil
}

// apply holds the write lock for the clone, mutate and swap. The deferred
// unlock releases it even when fn panics.
func (d *device) apply(fn func(m *status.MixerStatus) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.status.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	d.status = next
	return nil
}

// Snapshot returns a deep copy of one device's status.
func (r *Registry) Snapshot(serial string) (*status.MixerStatus, error) {
	d, err := r.device(serial)
	if err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status.Clone(), nil
}

// SnapshotAll returns a deep copy of the whole envelope. Each mixer is copied
// under its own lock; mixers are independent, so no ordering between devices
// is implied.
func (r *Registry) SnapshotAll() *status.DaemonStatus {
	r.mu.RLock()
	out := status.NewDaemonStatus(r.version)
	out.Paths = r.paths
	out.Files = r.files.Clone()
	devices := make(map[string]*device, len(r.devices))
	for k, d := range r.devices {
		devices[k] = d
	}
	r.mu.RUnlock()

	for k, d := range devices {
		d.mu.RLock()
		out.Mixers[k] = d.status.Clone()
		d.mu.RUnlock()
	}
	return out
}

// Serials lists the attached devices in lexical order.
func (r *Registry) Serials() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.devices))
	for k := range r.devices {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of attached devices.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// Version is the daemon version reported in every snapshot.
func (r *Registry) Version() string {
	return r.version
}

func (r *Registry) Paths() status.Paths {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.paths
}

func (r *Registry) SetPaths(p status.Paths) {
	r.mu.Lock()
	r.paths = p
	r.mu.Unlock()
}

// Files returns a copy of the last scanned inventory.
func (r *Registry) Files() status.Files {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.files.Clone()
}

// SetFiles replaces the inventory with the result of a rescan.
func (r *Registry) SetFiles(f status.Files) {
	r.mu.Lock()
	r.files = f.Clone()
	r.mu.Unlock()

	r.notify(Event{Kind: EventFilesChanged})
}
