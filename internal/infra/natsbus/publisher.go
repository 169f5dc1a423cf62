// Package natsbus mirrors mixer status changes onto NATS subjects so that
// processes without a Socket.IO client can follow the daemon.
package natsbus

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/edumarques81/mixerd/internal/domain/daemon"
	"github.com/edumarques81/mixerd/internal/domain/status"
)

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// Source yields mixer snapshots. The daemon registry implements it.
type Source interface {
	Snapshot(serial string) (*status.MixerStatus, error)
	Subscribe(daemon.Listener)
}

// Publisher sends the full mixer snapshot to <prefix>.<serial> after every
// attach or update, and an empty message to <prefix>.<serial>.detached.
type Publisher struct {
	conn   Conn
	prefix string
}

// Connect dials url and returns a publisher for prefix.
func Connect(url, prefix string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("mixerd"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	log.Info().Str("url", url).Str("prefix", prefix).Msg("NATS publisher connected")
	return NewPublisher(conn, prefix), nil
}

func NewPublisher(conn Conn, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: strings.TrimSuffix(prefix, ".")}
}

// Subject returns the subject a mixer's snapshots go to. Dots in the serial
// would create extra subject tokens and are replaced.
func (p *Publisher) Subject(serial string) string {
	return p.prefix + "." + strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_").Replace(serial)
}

// Follow publishes every mixer event from src.
func (p *Publisher) Follow(src Source) {
	src.Subscribe(func(ev daemon.Event) {
		var err error
		switch ev.Kind {
		case daemon.EventAttached, daemon.EventUpdated:
			err = p.publishMixer(src, ev.Serial)
		case daemon.EventDetached:
			err = p.conn.Publish(p.Subject(ev.Serial)+".detached", nil)
		default:
			return
		}
		if err != nil {
			log.Error().Err(err).Str("serial", ev.Serial).Str("event", ev.Kind.String()).Msg("NATS publish failed")
		}
	})
}

func (p *Publisher) publishMixer(src Source, serial string) error {
	snap, err := src.Snapshot(serial)
	if errors.Is(err, daemon.ErrNotAttached) {
		// Detached between the event and the snapshot; the detach event follows.
		return nil
	}
	if err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", serial, err)
	}
	return p.conn.Publish(p.Subject(serial), data)
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}
