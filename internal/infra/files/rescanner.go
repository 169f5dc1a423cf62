package files

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Rescanner refreshes the inventory on a fixed interval, catching changes the
// watcher cannot see (network mounts, directories created after startup).
type Rescanner struct {
	scheduler gocron.Scheduler
	interval  time.Duration
}

// NewRescanner schedules inv.Refresh every interval. An interval of zero
// creates a scheduler with no job.
func NewRescanner(inv *Inventory, interval time.Duration) (*Rescanner, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create rescan scheduler: %w", err)
	}
	if interval > 0 {
		_, err = s.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(func() { _ = inv.Refresh() }),
			gocron.WithName("resource-rescan"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			_ = s.Shutdown()
			return nil, fmt.Errorf("schedule rescan: %w", err)
		}
	}
	return &Rescanner{scheduler: s, interval: interval}, nil
}

func (r *Rescanner) Start() {
	log.Info().Dur("interval", r.interval).Msg("Periodic rescan started")
	r.scheduler.Start()
}

func (r *Rescanner) Stop() error {
	return r.scheduler.Shutdown()
}
