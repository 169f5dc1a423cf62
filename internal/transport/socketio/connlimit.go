package socketio

import (
	"net"
	"sync"
)

// ConnectionLimiter caps concurrent clients connecting from other hosts.
// Loopback clients (the local GUI and CLI) are never limited. When an
// external client exceeds the cap, the oldest external client is evicted.
type ConnectionLimiter struct {
	mu          sync.Mutex
	maxExternal int
	external    []string          // oldest first
	connections map[string]string // client ID -> remote address
}

func NewConnectionLimiter(maxExternal int) *ConnectionLimiter {
	return &ConnectionLimiter{
		maxExternal: maxExternal,
		connections: make(map[string]string),
	}
}

// TryAdd registers a client and returns the ID of the client it evicted, if
// any. Re-adding a known client is a no-op.
func (cl *ConnectionLimiter) TryAdd(clientID, remoteAddr string) (evictedID string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.connections[clientID]; exists {
		return ""
	}
	cl.connections[clientID] = remoteAddr

	if isLoopback(remoteAddr) {
		return ""
	}

	cl.external = append(cl.external, clientID)
	if len(cl.external) <= cl.maxExternal {
		return ""
	}
	evictedID = cl.external[0]
	cl.external = cl.external[1:]
	delete(cl.connections, evictedID)
	return evictedID
}

// Remove unregisters a client when it disconnects.
func (cl *ConnectionLimiter) Remove(clientID string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	addr, exists := cl.connections[clientID]
	if !exists {
		return
	}
	delete(cl.connections, clientID)
	if isLoopback(addr) {
		return
	}
	for i, id := range cl.external {
		if id == clientID {
			cl.external = append(cl.external[:i], cl.external[i+1:]...)
			break
		}
	}
}

// External returns the number of tracked external clients.
func (cl *ConnectionLimiter) External() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.external)
}

// isLoopback accepts a bare IP or host:port, including IPv4-mapped IPv6.
func isLoopback(addr string) bool {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	ip := net.ParseIP(addr)
	return ip != nil && ip.IsLoopback()
}
