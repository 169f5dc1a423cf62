package files

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumarques81/mixerd/internal/domain/status"
)

type fakeSink struct {
	paths status.Paths

	mu    sync.Mutex
	sets  int
	files status.Files
}

func (f *fakeSink) Paths() status.Paths { return f.paths }

func (f *fakeSink) SetFiles(files status.Files) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.files = files.Clone()
}

func (f *fakeSink) snapshot() (int, status.Files) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets, f.files.Clone()
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func layout(t *testing.T) status.Paths {
	t.Helper()
	root := t.TempDir()
	p := status.Paths{
		ProfileDirectory:    filepath.Join(root, "profiles"),
		MicProfileDirectory: filepath.Join(root, "mic-profiles"),
		SamplesDirectory:    filepath.Join(root, "samples"),
		PresetsDirectory:    filepath.Join(root, "presets"),
		IconsDirectory:      filepath.Join(root, "icons"),
	}
	for _, d := range []string{p.ProfileDirectory, p.MicProfileDirectory, p.SamplesDirectory, p.PresetsDirectory, p.IconsDirectory} {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}
	return p
}

func TestScanClassifiesFiles(t *testing.T) {
	p := layout(t)
	touch(t, filepath.Join(p.ProfileDirectory, "Default.goxlr"))
	touch(t, filepath.Join(p.ProfileDirectory, "Stream.GOXLR"))
	touch(t, filepath.Join(p.ProfileDirectory, "notes.txt"))
	touch(t, filepath.Join(p.ProfileDirectory, ".hidden.goxlr"))
	touch(t, filepath.Join(p.MicProfileDirectory, "SM7B.goxlrMicProfile"))
	touch(t, filepath.Join(p.PresetsDirectory, "Robot.preset"))
	touch(t, filepath.Join(p.IconsDirectory, "logo.png"))
	touch(t, filepath.Join(p.IconsDirectory, "cat.jpeg"))
	touch(t, filepath.Join(p.IconsDirectory, "vector.svg"))
	touch(t, filepath.Join(p.SamplesDirectory, "Airhorn.wav"))
	touch(t, filepath.Join(p.SamplesDirectory, "a", "Airhorn.mp3"))
	touch(t, filepath.Join(p.SamplesDirectory, "effects", "Boom.mp3"))
	touch(t, filepath.Join(p.SamplesDirectory, "effects", "readme.md"))
	touch(t, filepath.Join(p.SamplesDirectory, ".cache", "Ghost.wav"))

	got, err := NewScanner().Scan(p)
	require.NoError(t, err)

	assert.Equal(t, []string{"Default", "Stream"}, got.Profiles.Sorted())
	assert.Equal(t, []string{"SM7B"}, got.MicProfiles.Sorted())
	assert.Equal(t, []string{"Robot"}, got.Presets.Sorted())
	assert.Equal(t, []string{"cat.jpeg", "logo.png"}, got.Icons.Sorted())
	assert.Equal(t, map[string]string{
		"Airhorn": "Airhorn.wav",
		"Boom":    "effects/Boom.mp3",
	}, got.Samples)
}

func TestScanFirstSampleWinsInWalkOrder(t *testing.T) {
	p := layout(t)
	touch(t, filepath.Join(p.SamplesDirectory, "b", "Clap.wav"))
	touch(t, filepath.Join(p.SamplesDirectory, "a", "Clap.wav"))

	got, err := NewScanner().Scan(p)
	require.NoError(t, err)
	assert.Equal(t, "a/Clap.wav", got.Samples["Clap"])
}

func TestScanMissingDirectoriesAreEmpty(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nowhere")
	got, err := NewScanner().Scan(status.Paths{
		ProfileDirectory: root,
		SamplesDirectory: root,
		IconsDirectory:   "",
	})
	require.NoError(t, err)
	assert.NotNil(t, got.Profiles)
	assert.Empty(t, got.Profiles)
	assert.NotNil(t, got.Samples)
	assert.Empty(t, got.Samples)
}

func TestInventoryPublishesOnlyChanges(t *testing.T) {
	p := layout(t)
	touch(t, filepath.Join(p.PresetsDirectory, "One.preset"))

	var scanErrs []error
	sink := &fakeSink{paths: p}
	inv := NewInventory(sink, func(err error) { scanErrs = append(scanErrs, err) })

	require.NoError(t, inv.Refresh())
	require.NoError(t, inv.Refresh())
	sets, files := sink.snapshot()
	assert.Equal(t, 1, sets)
	assert.True(t, files.Presets.Contains("One"))

	touch(t, filepath.Join(p.PresetsDirectory, "Two.preset"))
	require.NoError(t, inv.Refresh())
	sets, files = sink.snapshot()
	assert.Equal(t, 2, sets)
	assert.True(t, files.Presets.Contains("Two"))
	assert.Len(t, scanErrs, 3)
}

func TestInventoryReportsScanErrors(t *testing.T) {
	p := layout(t)
	// A regular file where a directory is expected cannot be listed.
	require.NoError(t, os.RemoveAll(p.PresetsDirectory))
	touch(t, p.PresetsDirectory)

	var last error
	sink := &fakeSink{paths: p}
	inv := NewInventory(sink, func(err error) { last = err })

	err := inv.Refresh()
	assert.Error(t, err)
	assert.Equal(t, err, last)
	sets, _ := sink.snapshot()
	assert.Equal(t, 1, sets)
}

func TestWatcherRescansAfterChanges(t *testing.T) {
	p := layout(t)
	sink := &fakeSink{paths: p}
	inv := NewInventory(sink, nil)

	w, err := NewWatcher(inv, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.Error(t, w.Start(context.Background()))

	touch(t, filepath.Join(p.ProfileDirectory, "Live.goxlr"))
	require.Eventually(t, func() bool {
		_, files := sink.snapshot()
		return files.Profiles.Contains("Live")
	}, 2*time.Second, 10*time.Millisecond)

	// New sample subdirectories are picked up recursively.
	require.NoError(t, os.MkdirAll(filepath.Join(p.SamplesDirectory, "new"), 0o755))
	time.Sleep(50 * time.Millisecond)
	touch(t, filepath.Join(p.SamplesDirectory, "new", "Snare.wav"))
	require.Eventually(t, func() bool {
		_, files := sink.snapshot()
		return files.Samples["Snare"] == "new/Snare.wav"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestRescannerRunsPeriodically(t *testing.T) {
	p := layout(t)
	sink := &fakeSink{paths: p}

	var mu sync.Mutex
	scans := 0
	inv := NewInventory(sink, func(error) {
		mu.Lock()
		scans++
		mu.Unlock()
	})

	r, err := NewRescanner(inv, 30*time.Millisecond)
	require.NoError(t, err)
	r.Start()
	defer r.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return scans >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRescannerDisabled(t *testing.T) {
	r, err := NewRescanner(NewInventory(&fakeSink{}, func(error) {
		t.Error(errors.New("unexpected scan"))
	}), 0)
	require.NoError(t, err)
	r.Start()
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, r.Stop())
}
