package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/version"
)

const (
	// ServiceType is the mDNS service type for travelist stream servers
	ServiceType = "_travelist._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPath is the WebSocket path announced when none is given
	DefaultPath = "/ws"
)

// TXT record keys
const (
	TXTVersion = "version"
	TXTPath    = "path"
)

// Scanner handles mDNS discovery of stream servers
type Scanner struct {
	// Timeout is the maximum time to wait for answers
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses for stream servers until the timeout or ctx ends and returns
// them sorted by instance name. Repeated answers from one instance are merged.
func (s *Scanner) Scan(ctx context.Context) ([]Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var mu sync.Mutex
	found := make(map[string]Endpoint)

	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		for entry := range entries {
			ep, ok := parseServiceEntry(entry)
			if !ok {
				continue
			}
			logging.Debug("Stream server answered",
				zap.String("instance", ep.Instance),
				zap.String("addr", ep.Addr()),
			)
			mu.Lock()
			found[ep.Instance] = ep
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	endpoints := make([]Endpoint, 0, len(found))
	for _, ep := range found {
		endpoints = append(endpoints, ep)
	}
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Instance < endpoints[j].Instance
	})
	return endpoints, nil
}

// Find waits for a specific instance and returns it as soon as it answers.
func (s *Scanner) Find(ctx context.Context, instance string) (Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return Endpoint{}, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	result := make(chan Endpoint, 1)

	go func() {
		for entry := range entries {
			ep, ok := parseServiceEntry(entry)
			if ok && ep.Instance == instance {
				select {
				case result <- ep:
				default:
				}
				cancel()
				return
			}
		}
	}()

	if err := resolver.Lookup(ctx, instance, ServiceType, ServiceDomain, entries); err != nil {
		return Endpoint{}, fmt.Errorf("failed to look up %s: %w", instance, err)
	}

	select {
	case ep := <-result:
		return ep, nil
	case <-ctx.Done():
		select {
		case ep := <-result:
			return ep, nil
		default:
		}
		return Endpoint{}, fmt.Errorf("stream server %q not found within %s", instance, s.Timeout)
	}
}

// Announce registers a stream server under instance until ctx is done.
func Announce(ctx context.Context, instance string, port int, txt []string) error {
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	defer server.Shutdown()

	logging.Info("Announcing stream server",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	<-ctx.Done()
	return nil
}

// TXTRecords builds the TXT records announced by a stream server.
func TXTRecords(path string) []string {
	if path == "" {
		path = DefaultPath
	}
	return []string{
		TXTVersion + "=" + version.UserAgent(),
		TXTPath + "=" + path,
	}
}

// parseServiceEntry converts a zeroconf service entry to an Endpoint.
// Entries without an address or port are rejected.
func parseServiceEntry(entry *zeroconf.ServiceEntry) (Endpoint, bool) {
	if entry == nil || entry.Instance == "" || entry.Port == 0 {
		return Endpoint{}, false
	}

	// Prefer IPv4
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return Endpoint{}, false
	}

	// TXT records are in "key=value" format
	metadata := make(map[string]string, len(entry.Text))
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	return Endpoint{
		Instance:     entry.Instance,
		Host:         entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}, true
}
