package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/edumarques81/mixerd/internal/config"
	"github.com/edumarques81/mixerd/internal/domain/daemon"
	"github.com/edumarques81/mixerd/internal/domain/status"
	"github.com/edumarques81/mixerd/internal/infra/files"
	"github.com/edumarques81/mixerd/internal/infra/natsbus"
	"github.com/edumarques81/mixerd/internal/infra/oscmirror"
	"github.com/edumarques81/mixerd/internal/metrics"
	"github.com/edumarques81/mixerd/internal/transport/socketio"
	"github.com/edumarques81/mixerd/internal/types"
	"github.com/edumarques81/mixerd/internal/version"
)

// ServeCmd runs the daemon. Flags override the configuration file.
type ServeCmd struct {
	Listen    string `help:"HTTP listen address." placeholder:"ADDR"`
	Static    string `help:"Directory to serve static files from." type:"existingdir"`
	NATSURL   string `name:"nats-url" help:"Publish status changes to this NATS server." placeholder:"URL"`
	OSCTarget string `name:"osc-target" help:"Mirror levels and routing to this OSC listener." placeholder:"HOST:PORT"`
	NoWatch   bool   `help:"Do not watch resource directories for changes."`
}

func (c *ServeCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !cli.Debug {
		lvl, _ := cfg.LogLevel()
		zerolog.SetGlobalLevel(lvl)
	}

	info := version.GetInfo()
	log.Info().Msgf("%s", info.String())
	log.Info().
		Str("listen", cfg.HTTP.Listen).
		Str("profiles", cfg.Paths.Profiles).
		Str("samples", cfg.Paths.Samples).
		Bool("watch", cfg.Scan.Watch).
		Bool("nats", cfg.NATS.Enabled).
		Bool("osc", cfg.OSC.Enabled).
		Int("virtual_devices", len(cfg.VirtualDevices)).
		Msg("Configuration")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := daemon.NewRegistry(info.Version)
	reg.SetPaths(cfg.Paths.Status())

	m := metrics.New()
	m.Observe(reg)

	inv := files.NewInventory(reg, m.Rescanned)
	_ = inv.Refresh()

	if cfg.Scan.Watch {
		w, err := files.NewWatcher(inv, cfg.Scan.Debounce)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	rescanner, err := files.NewRescanner(inv, cfg.Scan.RescanInterval)
	if err != nil {
		return err
	}
	rescanner.Start()
	defer rescanner.Stop()

	if cfg.NATS.Enabled {
		pub, err := natsbus.Connect(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			return err
		}
		pub.Follow(reg)
		defer pub.Close()
	}

	if cfg.OSC.Enabled {
		mirror, err := oscmirror.Dial(cfg.OSC.Target, cfg.OSC.Prefix)
		if err != nil {
			return err
		}
		mirror.Follow(reg)
	}

	socketServer, err := socketio.NewServer(reg, socketio.Options{
		MaxExternalClients: cfg.Socket.MaxExternalClients,
		BroadcastDebounce:  cfg.Socket.BroadcastDebounce,
		OnSnapshot:         m.SnapshotServed,
	})
	if err != nil {
		return fmt.Errorf("create Socket.IO server: %w", err)
	}
	defer socketServer.Close()

	if err := attachVirtual(reg, cfg.VirtualDevices); err != nil {
		return err
	}

	server := &http.Server{
		Addr: cfg.HTTP.Listen,
		Handler: routes{
			registry:  reg,
			metrics:   m,
			socket:    socketServer,
			staticDir: cfg.HTTP.StaticDir,
		}.handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	log.Info().Str("addr", cfg.HTTP.Listen).Msg("HTTP server listening")
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}

// loadConfig falls back to defaults when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("No configuration file, using defaults")
		return config.Default(), nil
	}
	return cfg, err
}

func (c *ServeCmd) apply(cfg *config.Config) {
	if c.Listen != "" {
		cfg.HTTP.Listen = c.Listen
	}
	if c.Static != "" {
		cfg.HTTP.StaticDir = c.Static
	}
	if c.NATSURL != "" {
		cfg.NATS.Enabled = true
		cfg.NATS.URL = c.NATSURL
	}
	if c.OSCTarget != "" {
		cfg.OSC.Enabled = true
		cfg.OSC.Target = c.OSCTarget
	}
	if c.NoWatch {
		cfg.Scan.Watch = false
	}
}

// virtualHardware describes a device that exists only in configuration.
func virtualHardware(d config.VirtualDevice) status.HardwareStatus {
	product := "Mixer"
	if d.Variant == types.DeviceTypeMini {
		product = "Mixer Mini"
	}
	id := "virtual:" + d.Serial
	return status.HardwareStatus{
		Versions: types.FirmwareVersions{
			Firmware:  types.NewVersionNumber(1, 0, 0, 0),
			FPGACount: 0,
			DICE:      types.NewVersionNumber(1, 0, 0, 0),
		},
		SerialNumber:     d.Serial,
		ManufacturedDate: time.Now().Format("20060102"),
		DeviceType:       d.Variant,
		USBDevice: status.USBProductInformation{
			ManufacturerName: "mixerd",
			ProductName:      product,
			Identifier:       &id,
		},
	}
}

func attachVirtual(reg *daemon.Registry, devices []config.VirtualDevice) error {
	for _, d := range devices {
		if _, err := reg.Attach(virtualHardware(d)); err != nil {
			return fmt.Errorf("attach virtual device: %w", err)
		}
	}
	return nil
}
