package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/listing"
	"github.com/muurk/travelist/internal/logging"
	"github.com/muurk/travelist/internal/version"
)

// Client is a remote listing screen. Its Dispatch and Subscribe behave like
// those of a local listing.Holder.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	done    chan struct{}

	mu     sync.Mutex
	state  listing.State
	subs   map[*clientSub]struct{}
	err    error
	closed bool
}

type clientSub struct {
	ch   chan listing.State
	gone chan struct{}
	once sync.Once
}

// Dial connects to a stream server. url is a ws:// or wss:// URL whose path
// is normally PathWebSocket.
func Dial(ctx context.Context, url string) (*Client, error) {
	header := http.Header{}
	header.Set("User-Agent", version.UserAgent())

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (HTTP %d)", url, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	c := &Client{
		conn:  conn,
		done:  make(chan struct{}),
		state: listing.Loading{},
		subs:  make(map[*clientSub]struct{}),
	}
	go c.readLoop()

	logging.Info("Connected to stream server", zap.String("url", url))
	return c, nil
}

// Dispatch sends action to the server. It returns listing.ErrClosed once the
// connection is gone.
func (c *Client) Dispatch(ctx context.Context, action listing.Action) error {
	if action == nil {
		return fmt.Errorf("%w: nil", listing.ErrUnknownAction)
	}
	data, err := listing.EncodeAction(action)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return listing.ErrClosed
	default:
	}

	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(deadline)
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return listing.ErrClosed
		}
		return fmt.Errorf("send %s: %w", action, err)
	}
	return nil
}

// Subscribe returns a channel that first yields the latest state received
// from the server and then every later one. The channel is closed when the
// connection ends.
func (c *Client) Subscribe() (<-chan listing.State, func()) {
	sub := &clientSub{
		ch:   make(chan listing.State, listing.DefaultSubscriberBuffer),
		gone: make(chan struct{}),
	}

	c.mu.Lock()
	if c.closed {
		sub.ch <- c.state
		close(sub.ch)
		c.mu.Unlock()
		return sub.ch, func() {}
	}
	sub.ch <- c.state
	c.subs[sub] = struct{}{}
	c.mu.Unlock()

	return sub.ch, func() {
		sub.once.Do(func() { close(sub.gone) })
		c.mu.Lock()
		delete(c.subs, sub)
		c.mu.Unlock()
	}
}

// State returns the latest state received from the server.
func (c *Client) State() listing.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed when the connection has ended.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns why the connection ended, or nil after a normal close.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close sends a close frame and waits for the connection to end.
func (c *Client) Close() error {
	c.writeMu.Lock()
	err := c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	c.writeMu.Unlock()

	select {
	case <-c.done:
	case <-time.After(writeWait):
	}
	_ = c.conn.Close()
	<-c.done

	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

func (c *Client) readLoop() {
	var readErr error
	defer func() { c.finish(readErr) }()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				readErr = err
			}
			return
		}

		st, err := listing.DecodeState(data)
		if err != nil {
			logging.Warn("Dropping malformed state", zap.Error(err))
			continue
		}
		c.emit(st)
	}
}

// emit stores st and delivers it to every subscriber in order.
func (c *Client) emit(st listing.State) {
	c.mu.Lock()
	c.state = st
	subs := make([]*clientSub, 0, len(c.subs))
	for sub := range c.subs {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- st:
		case <-sub.gone:
		}
	}
}

func (c *Client) finish(err error) {
	c.mu.Lock()
	c.closed = true
	c.err = err
	for sub := range c.subs {
		close(sub.ch)
		delete(c.subs, sub)
	}
	c.mu.Unlock()
	close(c.done)
}
