package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/muurk/travelist/internal/listing"
)

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int                `yaml:"version"`
	Preferences *Preferences       `yaml:"preferences,omitempty"`
	Servers     map[string]*Server `yaml:"servers,omitempty"` // Keyed by mDNS instance name
}

// Preferences holds the settings for screens, the stream server and logging.
// Each field can be overridden by the TRAVELIST_* variable in its env tag.
type Preferences struct {
	LogLevel    string `yaml:"log_level,omitempty" env:"TRAVELIST_LOG_LEVEL"`
	LogFile     string `yaml:"log_file,omitempty" env:"TRAVELIST_LOG_FILE"`        // Where browse sessions log
	CatalogFile string `yaml:"catalog_file,omitempty" env:"TRAVELIST_CATALOG"`     // Empty means the built-in catalog
	QueueSize   int    `yaml:"queue_size" env:"TRAVELIST_QUEUE_SIZE"`              // Pending actions per screen
	FaultPolicy string `yaml:"fault_policy" env:"TRAVELIST_FAULT_POLICY"`          // "ignore" or "error"
	IndexPolicy string `yaml:"index_policy" env:"TRAVELIST_INDEX_POLICY"`          // "unchecked" or "reject"
	ListenAddr  string `yaml:"listen_addr" env:"TRAVELIST_LISTEN_ADDR"`            // Stream server address
	Advertise   bool   `yaml:"advertise" env:"TRAVELIST_ADVERTISE"`                // Announce the stream server via mDNS
	ScanTimeout int    `yaml:"scan_timeout" env:"TRAVELIST_SCAN_TIMEOUT"`          // mDNS browse timeout in seconds
}

// Server remembers a stream server found by scan.
type Server struct {
	Addr     string    `yaml:"addr"`
	LastSeen time.Time `yaml:"last_seen,omitempty"`
	Version  string    `yaml:"version,omitempty"`
}

// Defaults
const (
	DefaultListenAddr  = ":8765"
	DefaultScanTimeout = 5
)

// NewPreferences returns preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		LogLevel:    "",
		QueueSize:   listing.DefaultQueueSize,
		FaultPolicy: listing.FaultIgnore.String(),
		IndexPolicy: listing.IndexUnchecked.String(),
		ListenAddr:  DefaultListenAddr,
		Advertise:   false,
		ScanTimeout: DefaultScanTimeout,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Preferences: NewPreferences(),
		Servers:     make(map[string]*Server),
	}
}

// ErrInvalidPreferences wraps every validation failure.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Validate checks that the preferences can configure a screen.
func (p *Preferences) Validate() error {
	if p.QueueSize < 1 {
		return fmt.Errorf("%w: queue_size must be at least 1, got %d", ErrInvalidPreferences, p.QueueSize)
	}
	if p.ScanTimeout < 1 {
		return fmt.Errorf("%w: scan_timeout must be at least 1, got %d", ErrInvalidPreferences, p.ScanTimeout)
	}
	if _, err := listing.ParseFaultPolicy(p.FaultPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	if _, err := listing.ParseIndexPolicy(p.IndexPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	return nil
}

// HolderOptions converts the preferences into state holder options.
func (p *Preferences) HolderOptions() ([]listing.Option, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	fault, _ := listing.ParseFaultPolicy(p.FaultPolicy)
	index, _ := listing.ParseIndexPolicy(p.IndexPolicy)

	return []listing.Option{
		listing.WithQueueSize(p.QueueSize),
		listing.WithFaultPolicy(fault),
		listing.WithIndexPolicy(index),
	}, nil
}

// GetServer retrieves a remembered server by instance name.
// Returns nil if the server isn't in the registry.
func (r *Registry) GetServer(name string) *Server {
	return r.Servers[name]
}

// UpdateServerLastSeen records that a server was seen at addr.
func (r *Registry) UpdateServerLastSeen(name, addr, version string) {
	if r.Servers == nil {
		r.Servers = make(map[string]*Server)
	}
	srv, ok := r.Servers[name]
	if !ok {
		srv = &Server{}
		r.Servers[name] = srv
	}
	srv.Addr = addr
	srv.LastSeen = time.Now()
	if version != "" {
		srv.Version = version
	}
}

// ForgetServer removes a remembered server.
func (r *Registry) ForgetServer(name string) {
	delete(r.Servers, name)
}
