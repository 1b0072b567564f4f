package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Endpoint represents a stream server found on the network
type Endpoint struct {
	// Instance is the mDNS instance name (e.g., "living-room")
	Instance string

	// Host is the mDNS hostname (e.g., "pi.local.")
	Host string

	// IP is the preferred address, IPv4 when available
	IP string

	// Port is the stream server port
	Port int

	// Metadata contains the TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the endpoint answered
	DiscoveredAt time.Time
}

// String returns a human-readable representation of the endpoint
func (e Endpoint) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.Instance, e.Host, e.Addr())
}

// Addr returns host:port, bracketing IPv6 addresses.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.IP, strconv.Itoa(e.Port))
}

// URL returns the WebSocket URL of the endpoint
func (e Endpoint) URL() string {
	path := e.GetMetadata(TXTPath)
	if path == "" {
		path = DefaultPath
	}
	return "ws://" + e.Addr() + path
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (e Endpoint) GetMetadata(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}
