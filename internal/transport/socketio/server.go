// Package socketio pushes mixer status to Socket.IO clients.
//
// Clients request data with getStatus (whole daemon status) and getMixer
// (one mixer, by serial). The server answers with pushStatus and pushMixer,
// and broadcasts the same events whenever the registry changes. pushDetached
// tells clients a mixer has gone away.
package socketio

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zishang520/socket.io/servers/socket/v3"
	"github.com/zishang520/socket.io/v3/pkg/types"

	"github.com/edumarques81/mixerd/internal/domain/daemon"
	"github.com/edumarques81/mixerd/internal/domain/status"
)

// Event names.
const (
	EventGetStatus    = "getStatus"
	EventGetMixer     = "getMixer"
	EventPushStatus   = "pushStatus"
	EventPushMixer    = "pushMixer"
	EventPushDetached = "pushDetached"
)

// MixerPayload is the body of pushMixer.
type MixerPayload struct {
	Serial string              `json:"serial"`
	Mixer  *status.MixerStatus `json:"mixer"`
}

// DetachedPayload is the body of pushDetached.
type DetachedPayload struct {
	Serial string `json:"serial"`
}

type Options struct {
	MaxExternalClients int
	BroadcastDebounce  time.Duration
	// OnSnapshot is called with "daemon" or "mixer" for every snapshot sent.
	OnSnapshot func(scope string)
}

// Server handles Socket.IO connections and events.
type Server struct {
	io         *socket.Server
	registry   *daemon.Registry
	limiter    *ConnectionLimiter
	debouncer  *BroadcastDebouncer
	onSnapshot func(scope string)
	handler    http.Handler

	mu      sync.RWMutex
	clients map[string]*socket.Socket
}

// NewServer creates a Socket.IO server that follows reg.
func NewServer(reg *daemon.Registry, opts Options) (*Server, error) {
	sopts := socket.DefaultServerOptions()
	sopts.SetPingTimeout(20 * time.Second)
	sopts.SetPingInterval(25 * time.Second)
	sopts.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	if opts.MaxExternalClients < 1 {
		opts.MaxExternalClients = 1
	}
	if opts.BroadcastDebounce <= 0 {
		opts.BroadcastDebounce = 50 * time.Millisecond
	}

	s := &Server{
		io:         socket.NewServer(nil, sopts),
		registry:   reg,
		limiter:    NewConnectionLimiter(opts.MaxExternalClients),
		onSnapshot: opts.OnSnapshot,
		clients:    make(map[string]*socket.Socket),
	}
	s.debouncer = NewBroadcastDebouncer(opts.BroadcastDebounce, s.BroadcastMixer, s.BroadcastStatus)

	s.handler = s.io.ServeHandler(nil)
	s.setupHandlers()
	reg.Subscribe(s.onRegistryEvent)

	return s, nil
}

func (s *Server) setupHandlers() {
	s.io.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		clientID := string(client.Id())
		addr := client.Handshake().Address

		log.Info().Str("id", clientID).Str("addr", addr).Msg("Client connected")

		s.mu.Lock()
		s.clients[clientID] = client
		s.mu.Unlock()

		if evicted := s.limiter.TryAdd(clientID, addr); evicted != "" {
			s.evict(evicted)
		}

		// Give the client a moment to register its handlers.
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.pushStatus(client)
		}()

		client.On("disconnect", func(args ...any) {
			reason := ""
			if len(args) > 0 {
				if r, ok := args[0].(string); ok {
					reason = r
				}
			}
			log.Info().Str("id", clientID).Str("reason", reason).Msg("Client disconnected")

			s.limiter.Remove(clientID)
			s.mu.Lock()
			delete(s.clients, clientID)
			s.mu.Unlock()
		})

		client.On(EventGetStatus, func(args ...any) {
			log.Debug().Str("id", clientID).Msg(EventGetStatus)
			s.pushStatus(client)
		})

		client.On(EventGetMixer, func(args ...any) {
			serial := serialArg(args)
			log.Debug().Str("id", clientID).Str("serial", serial).Msg(EventGetMixer)
			s.pushMixer(client, serial)
		})
	})
}

// serialArg accepts either "SERIAL" or {"serial": "SERIAL"}.
func serialArg(args []any) string {
	if len(args) == 0 {
		return ""
	}
	switch v := args[0].(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["serial"].(string); ok {
			return s
		}
	}
	return ""
}

func (s *Server) evict(clientID string) {
	s.mu.Lock()
	client, ok := s.clients[clientID]
	delete(s.clients, clientID)
	s.mu.Unlock()

	if ok {
		log.Warn().Str("id", clientID).Msg("Evicting oldest external client")
		client.Disconnect(true)
	}
}

func (s *Server) counted(scope string) {
	if s.onSnapshot != nil {
		s.onSnapshot(scope)
	}
}

func (s *Server) pushStatus(client *socket.Socket) {
	client.Emit(EventPushStatus, s.registry.SnapshotAll())
	s.counted("daemon")
}

// pushMixer answers a getMixer. An unknown serial is answered with
// pushDetached so the client drops any stale copy.
func (s *Server) pushMixer(client *socket.Socket, serial string) {
	m, err := s.registry.Snapshot(serial)
	if err != nil {
		log.Debug().Err(err).Str("serial", serial).Msg("getMixer for unknown device")
		client.Emit(EventPushDetached, DetachedPayload{Serial: serial})
		return
	}
	client.Emit(EventPushMixer, MixerPayload{Serial: serial, Mixer: m})
	s.counted("mixer")
}

func (s *Server) onRegistryEvent(ev daemon.Event) {
	switch ev.Kind {
	case daemon.EventUpdated:
		s.debouncer.TriggerMixer(ev.Serial)
	case daemon.EventAttached, daemon.EventFilesChanged:
		s.debouncer.TriggerStatus()
	case daemon.EventDetached:
		s.debouncer.Forget(ev.Serial)
		s.io.Emit(EventPushDetached, DetachedPayload{Serial: ev.Serial})
	}
}

// BroadcastStatus sends the whole daemon status to all connected clients.
func (s *Server) BroadcastStatus() {
	snap := s.registry.SnapshotAll()
	s.io.Emit(EventPushStatus, snap)
	s.counted("daemon")

	log.Debug().Int("mixers", len(snap.Mixers)).Int("clients", s.ClientCount()).Msg("Broadcast status")
}

// BroadcastMixer sends one mixer to all connected clients.
func (s *Server) BroadcastMixer(serial string) {
	m, err := s.registry.Snapshot(serial)
	if err != nil {
		log.Debug().Err(err).Str("serial", serial).Msg("Skipping broadcast for detached mixer")
		return
	}
	s.io.Emit(EventPushMixer, MixerPayload{Serial: serial, Mixer: m})
	s.counted("mixer")
}

func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// ServeHTTP implements http.Handler for the Socket.IO server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Close stops pending broadcasts and closes the Socket.IO server.
func (s *Server) Close() error {
	s.debouncer.Stop()
	s.io.Close(nil)
	return nil
}
