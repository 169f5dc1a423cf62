package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher refreshes the inventory when anything changes in the resource
// directories. Bursts of events within the debounce window cause one rescan.
// The samples directory is watched recursively.
type Watcher struct {
	inv      *Inventory
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	started  bool
	stopChan chan struct{}
	scanChan chan struct{}
	done     sync.WaitGroup
}

func NewWatcher(inv *Inventory, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		inv:      inv,
		watcher:  w,
		debounce: debounce,
		stopChan: make(chan struct{}),
		scanChan: make(chan struct{}, 1),
	}, nil
}

// Start watches the directories the sink currently reports. Directories that
// do not exist yet are skipped; the periodic rescan still covers them.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return errors.New("watcher already started")
	}

	p := w.inv.sink.Paths()
	for _, dir := range []string{p.ProfileDirectory, p.MicProfileDirectory, p.PresetsDirectory, p.IconsDirectory} {
		w.add(dir)
	}
	if err := w.addTree(p.SamplesDirectory); err != nil {
		return err
	}

	w.started = true
	w.done.Add(2)
	go w.watchLoop(ctx)
	go w.scanLoop(ctx)

	log.Info().Strs("dirs", w.watcher.WatchList()).Msg("Resource watcher started")
	return nil
}

// Stop ends both loops and releases the fsnotify handle.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopChan:
		return nil
	default:
		close(w.stopChan)
	}
	err := w.watcher.Close()
	w.done.Wait()
	log.Info().Msg("Resource watcher stopped")
	return err
}

func (w *Watcher) add(dir string) {
	if dir == "" {
		return
	}
	if err := w.watcher.Add(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("dir", dir).Msg("Resource directory missing, not watched")
			return
		}
		log.Warn().Err(err).Str("dir", dir).Msg("Failed to watch resource directory")
	}
}

func (w *Watcher) addTree(root string) error {
	if root == "" {
		return nil
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if hidden(d.Name()) && path != root {
				return filepath.SkipDir
			}
			w.add(path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.done.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if hidden(filepath.Base(event.Name)) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						log.Warn().Err(err).Msg("Failed to watch new directory")
					}
				}
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Resource change detected")
			w.trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Resource watcher error")
		}
	}
}

func (w *Watcher) scanLoop(ctx context.Context) {
	defer w.done.Done()
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.scanChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			_ = w.inv.Refresh()
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.scanChan <- struct{}{}:
	default:
	}
}
