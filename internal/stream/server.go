package stream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/catalog"
	"github.com/muurk/travelist/internal/listing"
	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/version"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum action message size allowed from peer
	maxMessageSize = 4096

	// Default time allowed for sessions to finish during shutdown
	defaultShutdownTimeout = 10 * time.Second

	// Time a peer has to answer our close frame
	closeGracePeriod = 2 * time.Second
)

// Paths served by the Handler
const (
	PathWebSocket = "/ws"
	PathHealth    = "/healthz"
)

// Config holds the server configuration
type Config struct {
	Addr            string           // Listen address, e.g. ":8765"
	Source          catalog.Source   // Catalog for every session; nil means the built-in catalog
	HolderOptions   []listing.Option // Applied to every session's holder
	ShutdownTimeout time.Duration    // Zero means 10 seconds
}

// Server runs one listing holder per WebSocket connection
type Server struct {
	config   *Config
	upgrader websocket.Upgrader
	listener net.Listener
	http     *http.Server

	// baseCtx is canceled on shutdown; sessions derive from it
	baseCtx    context.Context
	cancelBase context.CancelFunc

	wg       sync.WaitGroup
	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new Server instance
func New(config *Config) *Server {
	if config == nil {
		config = &Config{}
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaultShutdownTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		baseCtx:    ctx,
		cancelBase: cancel,
		sessions:   make(map[string]*session),
	}
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler serving /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PathWebSocket, s.handleWebSocket)
	mux.HandleFunc(PathHealth, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Server", version.UserAgent())
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// Listen binds the configured address. Addr reports the bound address
// afterwards, which matters when the port is 0.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	s.listener = listener

	logging.Info("Stream server listening",
		zap.String("addr", listener.Addr().String()),
	)
	return nil
}

// Addr returns the bound listener address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until ctx is done, then shuts down gracefully.
// Listen is called first if it has not been.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.http.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown requested, stopping stream server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("stream server: %w", err)
	}
}

// Shutdown stops accepting connections and asks every session to end with
// a GoingAway close frame. Sessions still open when ctx expires are closed
// without a handshake.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down stream server...")

	// Hijacked websocket connections are not tracked by http.Server, so
	// sessions end through baseCtx. Under mu so no handler adds to wg after
	// the wait below starts.
	s.mu.Lock()
	s.cancelBase()
	s.mu.Unlock()

	if err := s.http.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logging.Error("Error stopping HTTP server", zap.Error(err))
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
		s.mu.Lock()
		for id, sess := range s.sessions {
			logging.Debug("Closing active session", zap.String("session", id))
			sess.closeConn()
		}
		s.mu.Unlock()
		<-done
	}

	logging.Sync()
	return nil
}

// ActiveSessions returns the number of connected screens
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// handleWebSocket upgrades the request and runs a session until either side
// goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.baseCtx.Err() != nil {
		s.mu.Unlock()
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error response
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	sess := newSession(conn, r.RemoteAddr, s.config.Source, s.config.HolderOptions)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.sessions, sess.id)
		s.mu.Unlock()
	}()

	sess.run(s.baseCtx)
}
