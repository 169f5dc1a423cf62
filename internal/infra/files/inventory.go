package files

import (
	"reflect"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/edumarques81/mixerd/internal/domain/status"
)

// Sink receives the inventory. The daemon registry implements it.
type Sink interface {
	Paths() status.Paths
	SetFiles(status.Files)
}

// Inventory runs scans against the sink's current paths and publishes the
// result when it differs from the last one. Scans are serialized.
type Inventory struct {
	scanner *Scanner
	sink    Sink
	onScan  func(error)

	mu   sync.Mutex
	last *status.Files
}

// NewInventory returns an Inventory publishing into sink. onScan, if not nil,
// is called after every scan with its error.
func NewInventory(sink Sink, onScan func(error)) *Inventory {
	return &Inventory{
		scanner: NewScanner(),
		sink:    sink,
		onScan:  onScan,
	}
}

// Refresh scans once. A partial result is still published.
func (inv *Inventory) Refresh() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	found, err := inv.scanner.Scan(inv.sink.Paths())
	if inv.onScan != nil {
		inv.onScan(err)
	}
	if err != nil {
		log.Warn().Err(err).Msg("Resource scan incomplete")
	}

	if inv.last != nil && reflect.DeepEqual(*inv.last, found) {
		log.Debug().Msg("Resource inventory unchanged")
		return err
	}
	inv.last = &found
	inv.sink.SetFiles(found)

	log.Info().
		Int("profiles", len(found.Profiles)).
		Int("mic_profiles", len(found.MicProfiles)).
		Int("presets", len(found.Presets)).
		Int("samples", len(found.Samples)).
		Int("icons", len(found.Icons)).
		Msg("Resource inventory updated")
	return err
}
