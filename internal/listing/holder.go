package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/catalog"
	"github.com/muurk/travelist/internal/logging"
)

// Holder owns the state of one listing screen.
//
// All transitions run on a single worker goroutine started by Start.
// Dispatch only enqueues; Subscribe observes. A Holder must not be shared
// between screens.
type Holder struct {
	source  catalog.Source
	opts    options
	actions chan Action
	done    chan struct{}

	mu       sync.Mutex
	state    State
	subs     map[*subscriber]struct{}
	started  bool
	closed   bool
	finished bool
	cancel   context.CancelFunc
}

type subscriber struct {
	ch   chan State
	gone chan struct{}
	once sync.Once
}

// NewHolder creates a Holder in the Loading state. Nothing happens until
// Start is called. A nil source means the built-in catalog.
func NewHolder(source catalog.Source, opts ...Option) *Holder {
	if source == nil {
		source = catalog.Static{}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Holder{
		source:  source,
		opts:    o,
		actions: make(chan Action, o.queueSize),
		done:    make(chan struct{}),
		state:   Loading{},
		subs:    make(map[*subscriber]struct{}),
	}
}

// Start launches the worker and returns immediately. The worker first loads
// the catalog, then consumes actions until ctx is done or Close is called.
// Calling Start more than once, or after Close, has no effect.
func (h *Holder) Start(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.started || h.closed {
		return
	}
	h.started = true

	ctx, h.cancel = context.WithCancel(ctx)
	go h.run(ctx)
}

// Close stops the worker, abandons queued actions and closes every
// subscription channel. It waits for the worker to exit.
func (h *Holder) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		<-h.done
		return
	}
	h.closed = true
	started := h.started
	cancel := h.cancel
	h.mu.Unlock()

	if started {
		cancel()
	} else {
		h.finish()
	}
	<-h.done
}

// Done is closed once the worker has exited (or Close ran before Start).
func (h *Holder) Done() <-chan struct{} {
	return h.done
}

// State returns the current state.
func (h *Holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Dispatch queues action for the worker. It returns as soon as the action is
// queued, blocking only while the queue is full. It returns ErrClosed once
// the holder has stopped, or ctx.Err() if ctx ends first.
func (h *Holder) Dispatch(ctx context.Context, action Action) error {
	if action == nil {
		return fmt.Errorf("%w: nil", ErrUnknownAction)
	}

	h.mu.Lock()
	closed := h.closed || h.finished
	h.mu.Unlock()
	if closed {
		return ErrClosed
	}

	select {
	case h.actions <- action:
		return nil
	case <-h.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns a channel that yields the current state, then every
// later state in order. The worker waits for each subscriber to take a
// value, so slow readers hold back transitions. cancel releases the
// subscription; the channel is not closed by cancel. The channel is closed
// when the holder stops.
func (h *Holder) Subscribe() (<-chan State, func()) {
	s := &subscriber{
		ch:   make(chan State, h.opts.subBuffer),
		gone: make(chan struct{}),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s.ch <- h.state
	if h.finished {
		close(s.ch)
		return s.ch, func() {}
	}
	h.subs[s] = struct{}{}

	return s.ch, func() { h.unsubscribe(s) }
}

func (h *Holder) unsubscribe(s *subscriber) {
	s.once.Do(func() { close(s.gone) })

	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

func (h *Holder) run(ctx context.Context) {
	defer h.finish()

	h.initialize(ctx)

	for {
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case action := <-h.actions:
			h.apply(ctx, action)
		}
	}
}

// initialize loads the catalog and leaves Loading.
func (h *Holder) initialize(ctx context.Context) {
	countries, err := h.source.Countries(ctx)
	if ctx.Err() != nil {
		return
	}
	if err == nil && len(countries) == 0 {
		err = catalog.ErrEmptyCatalog
	}

	if err != nil {
		logging.Error("Catalog load failed",
			zap.String("session", h.opts.session),
			zap.Error(err),
		)
		h.emit(ctx, Error{Err: fmt.Errorf("load catalog: %w", err)})
		return
	}

	logging.Info("Catalog loaded",
		zap.String("session", h.opts.session),
		zap.String("catalog", catalog.Summary(countries)),
	)
	h.emit(ctx, Success{
		Countries:       countries,
		SelectedCountry: countries[0],
	})
}

func (h *Holder) apply(ctx context.Context, action Action) {
	logging.LogAction(h.opts.session, action)

	current := h.State()
	next, err := Reduce(current, action, h.opts.indexPolicy)
	if err != nil {
		h.fault(action, err)
		if h.opts.faultPolicy != FaultError {
			return
		}
		if _, sunk := current.(Error); sunk {
			return
		}
		next = Error{Err: err}
	}

	if next == nil {
		return
	}
	h.emit(ctx, next)
}

func (h *Holder) fault(action Action, err error) {
	logging.LogFault(h.opts.session, action, err)
	if h.opts.faultHandler != nil {
		h.opts.faultHandler(action, err)
	}
}

// emit replaces the state and delivers it to every current subscriber.
func (h *Holder) emit(ctx context.Context, next State) {
	h.mu.Lock()
	prev := h.state
	h.state = next
	subs := make([]*subscriber, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	logging.LogTransition(h.opts.session, prev, next)

	for _, s := range subs {
		select {
		case s.ch <- next:
		case <-s.gone:
		case <-ctx.Done():
			return
		}
	}
}

// finish closes subscriptions and marks the holder stopped. It runs once,
// either at worker exit or from Close when the worker never started.
func (h *Holder) finish() {
	h.mu.Lock()
	h.finished = true
	for s := range h.subs {
		close(s.ch)
		delete(h.subs, s)
	}
	h.mu.Unlock()

	close(h.done)
}

// IsClosed reports whether err means the holder no longer accepts actions.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
