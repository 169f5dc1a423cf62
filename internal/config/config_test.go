package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumarques81/mixerd/internal/types"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.NATS.Enabled)
	assert.True(t, cfg.Scan.Watch)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixerd.yaml")
	writeFile(t, path, `
http:
  listen: 127.0.0.1:9000
paths:
  samples_directory: /srv/samples
scan:
  rescan_interval: 30s
virtual_devices:
  - serial: V1
    variant: Mini
  - serial: V2
    variant: Full
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Listen)
	assert.Equal(t, "/srv/samples", cfg.Paths.Samples)
	assert.Equal(t, Default().Paths.Profiles, cfg.Paths.Profiles)
	assert.Equal(t, 30*time.Second, cfg.Scan.RescanInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Scan.Debounce)
	assert.Equal(t, []VirtualDevice{
		{Serial: "V1", Variant: types.DeviceTypeMini},
		{Serial: "V2", Variant: types.DeviceTypeFull},
	}, cfg.VirtualDevices)

	assert.Equal(t, "/srv/samples", cfg.Paths.Status().SamplesDirectory)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("MIXERD_NATS_URL", "nats://bus:4222")
	writeFile(t, ".env", "MIXERD_LEVEL=debug\nMIXERD_NATS_URL=nats://ignored:1\n")
	writeFile(t, "mixerd.yaml", `
nats:
  enabled: true
  url: ${MIXERD_NATS_URL}
logging:
  level: ${MIXERD_LEVEL}
`)
	t.Cleanup(func() { os.Unsetenv("MIXERD_LEVEL") })

	cfg, err := Load("mixerd.yaml")
	require.NoError(t, err)
	assert.Equal(t, "nats://bus:4222", cfg.NATS.URL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown variant":  "virtual_devices:\n  - serial: V1\n    variant: Huge\n",
		"duplicate serial": "virtual_devices:\n  - serial: V1\n    variant: Mini\n  - serial: V1\n    variant: Full\n",
		"bad level":        "logging:\n  level: loud\n",
		"nats wildcard":    "nats:\n  enabled: true\n  subject_prefix: mixer.*\n",
		"no clients":       "socket:\n  max_external_clients: 0\n",
		"osc target":       "osc:\n  enabled: true\n  target: localhost\n",
		"empty path":       "paths:\n  icons_directory: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mixerd.yaml")
			writeFile(t, path, body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestWriteExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "mixerd.yaml")
	require.NoError(t, WriteExample(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.VirtualDevices, 1)
	assert.Equal(t, types.DeviceTypeFull, cfg.VirtualDevices[0].Variant)
	assert.Equal(t, Default().Scan, cfg.Scan)

	assert.Error(t, WriteExample(path, false))
	assert.NoError(t, WriteExample(path, true))
}
