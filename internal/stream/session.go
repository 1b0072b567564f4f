package stream

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/catalog"
	"github.com/muurk/travelist/internal/listing"
	"github.com/muurk/travelist/internal/logging"
)

// session binds one WebSocket connection to one holder.
type session struct {
	id         string
	remoteAddr string
	conn       *websocket.Conn
	holder     *listing.Holder

	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, remoteAddr string, source catalog.Source, opts []listing.Option) *session {
	id := uuid.NewString()
	opts = append(append([]listing.Option(nil), opts...), listing.WithSession(id))

	return &session{
		id:         id,
		remoteAddr: remoteAddr,
		conn:       conn,
		holder:     listing.NewHolder(source, opts...),
	}
}

// closeConn unblocks the reader; safe to call from any goroutine.
func (s *session) closeConn() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}

// run starts the holder, forwards its states, and feeds it actions until
// the peer disconnects or ctx is done.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logging.LogConnection(s.remoteAddr, s.id, "session_opened")
	defer logging.LogConnection(s.remoteAddr, s.id, "session_closed")

	// Subscribe before Start so the peer sees Loading first
	states, unsubscribe := s.holder.Subscribe()
	defer unsubscribe()
	s.holder.Start(ctx)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if s.writeLoop(ctx, states) {
			// Let the reader collect the peer's close reply
			_ = s.conn.SetReadDeadline(time.Now().Add(closeGracePeriod))
			return
		}
		// A dead writer means the peer is gone
		s.closeConn()
	}()

	s.readLoop(ctx)

	// Closing the holder ends the writer, which may still owe a close frame
	cancel()
	s.holder.Close()
	<-writerDone
	s.closeConn()
}

// readLoop decodes action envelopes and dispatches them to the holder.
func (s *session) readLoop(ctx context.Context) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Connection closed or error reading message",
					zap.String("session", s.id),
					zap.Error(err),
				)
			}
			return
		}

		if msgType != websocket.TextMessage {
			logging.Warn("Ignoring non-text message",
				zap.String("session", s.id),
				zap.Int("type", msgType),
			)
			continue
		}

		action, err := listing.DecodeAction(data)
		if err != nil {
			logging.Warn("Dropping malformed action",
				zap.String("session", s.id),
				zap.ByteString("payload", data),
				zap.Error(err),
			)
			continue
		}

		if err := s.holder.Dispatch(ctx, action); err != nil {
			if listing.IsClosed(err) {
				logging.Info("Holder stopped accepting actions", zap.String("session", s.id))
			} else {
				logging.Debug("Dispatch abandoned",
					zap.String("session", s.id),
					zap.Error(err),
				)
			}
			return
		}
	}
}

// writeLoop owns all writes: state envelopes and keepalive pings. It
// reports whether it ended by sending a close frame.
func (s *session) writeLoop(ctx context.Context, states <-chan listing.State) bool {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case st, ok := <-states:
			if !ok {
				if ctx.Err() != nil {
					return s.writeClose(websocket.CloseGoingAway, "server shutting down")
				}
				return s.writeClose(websocket.CloseNormalClosure, "screen closed")
			}
			data, err := listing.EncodeState(st)
			if err != nil {
				logging.Error("Failed to encode state",
					zap.String("session", s.id),
					zap.Error(err),
				)
				continue
			}
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logging.Debug("Failed to write state",
					zap.String("session", s.id),
					zap.Error(err),
				)
				return false
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return false
			}

		case <-ctx.Done():
			return s.writeClose(websocket.CloseGoingAway, "server shutting down")
		}
	}
}

func (s *session) writeClose(code int, text string) bool {
	msg := websocket.FormatCloseMessage(code, text)
	return s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)) == nil
}
