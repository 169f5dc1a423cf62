// Package oscmirror forwards mixer level and routing changes as OSC messages,
// so control surfaces and DAW scripts can follow the mixer without speaking
// the daemon's JSON protocol.
//
// Addresses, with P the configured prefix and S the mixer serial:
//
//	P/S/volume/<Channel>          int32 0..255
//	P/S/fader/<Fader>/channel     string
//	P/S/fader/<Fader>/mute        string
//	P/S/route/<Input>/<Output>    bool
//	P/S/profile                   string
//	P/S/detached                  no arguments
//
// Only values that changed since the last message for that mixer are sent.
package oscmirror

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/hypebeast/go-osc/osc"
	"github.com/rs/zerolog/log"

	"github.com/edumarques81/mixerd/internal/domain/daemon"
	"github.com/edumarques81/mixerd/internal/domain/status"
	"github.com/edumarques81/mixerd/internal/types"
)

// Sender is satisfied by *osc.Client.
type Sender interface {
	Send(packet osc.Packet) error
}

// Source yields mixer snapshots. The daemon registry implements it.
type Source interface {
	Snapshot(serial string) (*status.MixerStatus, error)
	Subscribe(daemon.Listener)
}

type Mirror struct {
	sender Sender
	prefix string

	mu   sync.Mutex
	sent map[string]map[string]any // serial -> address -> last value
}

// Dial returns a mirror sending UDP to target ("host:port").
func Dial(target, prefix string) (*Mirror, error) {
	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		return nil, fmt.Errorf("osc target %q: %w", target, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("osc target %q: bad port: %w", target, err)
	}
	log.Info().Str("target", target).Str("prefix", prefix).Msg("OSC mirror enabled")
	return New(osc.NewClient(host, port), prefix), nil
}

func New(sender Sender, prefix string) *Mirror {
	return &Mirror{
		sender: sender,
		prefix: "/" + strings.Trim(prefix, "/"),
		sent:   make(map[string]map[string]any),
	}
}

// Follow mirrors every mixer event from src.
func (m *Mirror) Follow(src Source) {
	src.Subscribe(func(ev daemon.Event) {
		var err error
		switch ev.Kind {
		case daemon.EventAttached, daemon.EventUpdated:
			var snap *status.MixerStatus
			snap, err = src.Snapshot(ev.Serial)
			if errors.Is(err, daemon.ErrNotAttached) {
				return
			}
			if err == nil {
				err = m.Mirror(ev.Serial, snap)
			}
		case daemon.EventDetached:
			err = m.Detached(ev.Serial)
		default:
			return
		}
		if err != nil {
			log.Warn().Err(err).Str("serial", ev.Serial).Msg("OSC send failed")
		}
	})
}

// Mirror sends the values of s that differ from what was last sent for serial.
func (m *Mirror) Mirror(serial string, s *status.MixerStatus) error {
	values := m.values(serial, s)

	m.mu.Lock()
	last := m.sent[serial]
	if last == nil {
		last = make(map[string]any, len(values))
		m.sent[serial] = last
	}
	var changed []*osc.Message
	for _, v := range values {
		if prev, ok := last[v.addr]; ok && prev == v.arg {
			continue
		}
		last[v.addr] = v.arg
		changed = append(changed, osc.NewMessage(v.addr, v.arg))
	}
	m.mu.Unlock()

	var errs []error
	for _, msg := range changed {
		if err := m.sender.Send(msg); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", msg.Address, err))
		}
	}
	return errors.Join(errs...)
}

// Detached announces that serial went away and forgets what was sent for it.
func (m *Mirror) Detached(serial string) error {
	m.mu.Lock()
	delete(m.sent, serial)
	m.mu.Unlock()
	return m.sender.Send(osc.NewMessage(m.addr(serial, "detached")))
}

type value struct {
	addr string
	arg  any
}

func (m *Mirror) values(serial string, s *status.MixerStatus) []value {
	out := make([]value, 0, types.ChannelNameCount+2*types.FaderNameCount+types.InputDeviceCount*types.OutputDeviceCount+1)
	for _, ch := range types.AllChannelNames() {
		out = append(out, value{m.addr(serial, "volume", ch.String()), int32(s.ChannelVolume(ch))})
	}
	for _, f := range types.AllFaderNames() {
		fs := s.Fader(f)
		out = append(out,
			value{m.addr(serial, "fader", f.String(), "channel"), fs.Channel.String()},
			value{m.addr(serial, "fader", f.String(), "mute"), fs.MuteType.String()},
		)
	}
	for _, in := range types.AllInputDevices() {
		for _, o := range types.AllOutputDevices() {
			out = append(out, value{m.addr(serial, "route", in.String(), o.String()), s.IsRouted(in, o)})
		}
	}
	out = append(out, value{m.addr(serial, "profile"), s.ProfileName})
	return out
}

func (m *Mirror) addr(serial string, parts ...string) string {
	return m.prefix + "/" + oscToken(serial) + "/" + strings.Join(parts, "/")
}

// oscToken replaces characters with a meaning in OSC address patterns.
func oscToken(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', ' ', '#', '*', ',', '?', '[', ']', '{', '}':
			return '_'
		}
		return r
	}, s)
}
