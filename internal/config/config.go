// Package config loads the daemon configuration from a YAML file. Environment
// variables referenced as ${VAR} are expanded first, and .env files in the
// working directory are loaded into the environment before that.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/edumarques81/mixerd/internal/domain/status"
	"github.com/edumarques81/mixerd/internal/types"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "mixerd.yaml"

var envFiles = []string{".env", ".env.local"}

type Config struct {
	HTTP           HTTPConfig      `yaml:"http"`
	Paths          PathsConfig     `yaml:"paths"`
	Scan           ScanConfig      `yaml:"scan"`
	NATS           NATSConfig      `yaml:"nats"`
	OSC            OSCConfig       `yaml:"osc"`
	Socket         SocketConfig    `yaml:"socket"`
	Logging        LoggingConfig   `yaml:"logging"`
	VirtualDevices []VirtualDevice `yaml:"virtual_devices"`
}

type HTTPConfig struct {
	Listen    string `yaml:"listen"`
	StaticDir string `yaml:"static_dir"`
}

// PathsConfig are the resource directories reported in the daemon status and
// scanned for the file inventory.
type PathsConfig struct {
	Profiles    string `yaml:"profile_directory"`
	MicProfiles string `yaml:"mic_profile_directory"`
	Samples     string `yaml:"samples_directory"`
	Presets     string `yaml:"presets_directory"`
	Icons       string `yaml:"icons_directory"`
}

// Status converts the configured directories into their status form.
func (p PathsConfig) Status() status.Paths {
	return status.Paths{
		ProfileDirectory:    p.Profiles,
		MicProfileDirectory: p.MicProfiles,
		SamplesDirectory:    p.Samples,
		PresetsDirectory:    p.Presets,
		IconsDirectory:      p.Icons,
	}
}

type ScanConfig struct {
	Watch          bool          `yaml:"watch"`
	RescanInterval time.Duration `yaml:"rescan_interval"` // 0 disables periodic rescans
	Debounce       time.Duration `yaml:"debounce"`
}

type NATSConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

// OSCConfig sends level and routing changes to an OSC listener.
type OSCConfig struct {
	Enabled bool   `yaml:"enabled"`
	Target  string `yaml:"target"` // host:port
	Prefix  string `yaml:"prefix"`
}

type SocketConfig struct {
	MaxExternalClients int           `yaml:"max_external_clients"`
	BroadcastDebounce  time.Duration `yaml:"broadcast_debounce"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// VirtualDevice is attached at startup without hardware, for client
// development.
type VirtualDevice struct {
	Serial  string           `yaml:"serial"`
	Variant types.DeviceType `yaml:"variant"`
}

// Default returns a complete configuration. Resource directories live under
// the user config directory.
func Default() *Config {
	base := "."
	if dir, err := os.UserConfigDir(); err == nil {
		base = filepath.Join(dir, "mixerd")
	}
	return &Config{
		HTTP: HTTPConfig{Listen: ":14564"},
		Paths: PathsConfig{
			Profiles:    filepath.Join(base, "profiles"),
			MicProfiles: filepath.Join(base, "mic-profiles"),
			Samples:     filepath.Join(base, "samples"),
			Presets:     filepath.Join(base, "presets"),
			Icons:       filepath.Join(base, "icons"),
		},
		Scan: ScanConfig{
			Watch:          true,
			RescanInterval: 5 * time.Minute,
			Debounce:       500 * time.Millisecond,
		},
		NATS: NATSConfig{
			URL:           "nats://127.0.0.1:4222",
			SubjectPrefix: "mixerd.status",
		},
		OSC: OSCConfig{
			Target: "127.0.0.1:9000",
			Prefix: "/mixerd",
		},
		Socket: SocketConfig{
			MaxExternalClients: 4,
			BroadcastDebounce:  50 * time.Millisecond,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path on top of Default and validates the result. A missing file
// yields an error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadEnvFiles loads the .env files that exist. Variables already set in the
// process environment win.
func loadEnvFiles() error {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.HTTP.Listen) == "" {
		errs = append(errs, errors.New("http.listen is required"))
	}
	for name, dir := range map[string]string{
		"profile_directory":     c.Paths.Profiles,
		"mic_profile_directory": c.Paths.MicProfiles,
		"samples_directory":     c.Paths.Samples,
		"presets_directory":     c.Paths.Presets,
		"icons_directory":       c.Paths.Icons,
	} {
		if dir == "" {
			errs = append(errs, fmt.Errorf("paths.%s is required", name))
		}
	}
	if c.Scan.RescanInterval < 0 {
		errs = append(errs, errors.New("scan.rescan_interval must not be negative"))
	}
	if c.Scan.Debounce <= 0 {
		errs = append(errs, errors.New("scan.debounce must be positive"))
	}
	if c.NATS.Enabled {
		if c.NATS.URL == "" {
			errs = append(errs, errors.New("nats.url is required when nats is enabled"))
		}
		if c.NATS.SubjectPrefix == "" || strings.ContainsAny(c.NATS.SubjectPrefix, "*> \t") {
			errs = append(errs, fmt.Errorf("nats.subject_prefix %q is not a literal subject", c.NATS.SubjectPrefix))
		}
	}
	if c.OSC.Enabled {
		if _, port, err := net.SplitHostPort(c.OSC.Target); err != nil || port == "" {
			errs = append(errs, fmt.Errorf("osc.target %q must be host:port", c.OSC.Target))
		}
		if !strings.HasPrefix(c.OSC.Prefix, "/") {
			errs = append(errs, fmt.Errorf("osc.prefix %q must start with /", c.OSC.Prefix))
		}
	}
	if c.Socket.MaxExternalClients < 1 {
		errs = append(errs, errors.New("socket.max_external_clients must be at least 1"))
	}
	if c.Socket.BroadcastDebounce <= 0 {
		errs = append(errs, errors.New("socket.broadcast_debounce must be positive"))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]bool, len(c.VirtualDevices))
	for i, d := range c.VirtualDevices {
		switch {
		case d.Serial == "":
			errs = append(errs, fmt.Errorf("virtual_devices[%d].serial is required", i))
		case seen[d.Serial]:
			errs = append(errs, fmt.Errorf("virtual_devices[%d]: duplicate serial %q", i, d.Serial))
		}
		seen[d.Serial] = true
	}
	return errors.Join(errs...)
}

// LogLevel parses logging.level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

const exampleHeader = `# mixerd configuration.
# ${VAR} references are expanded from the environment and .env files.
`

// WriteExample writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteExample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	cfg := Default()
	cfg.VirtualDevices = []VirtualDevice{{Serial: "VIRTUAL-FULL", Variant: types.DeviceTypeFull}}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal example config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, append([]byte(exampleHeader), data...), 0o644)
}
