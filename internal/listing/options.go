package listing

const (
	// DefaultQueueSize is the number of actions that can wait for the worker.
	DefaultQueueSize = 16

	// DefaultSubscriberBuffer is the per-subscriber channel capacity.
	DefaultSubscriberBuffer = 8
)

type options struct {
	queueSize    int
	subBuffer    int
	faultPolicy  FaultPolicy
	indexPolicy  IndexPolicy
	faultHandler func(Action, error)
	session      string
}

func defaultOptions() options {
	return options{
		queueSize:   DefaultQueueSize,
		subBuffer:   DefaultSubscriberBuffer,
		faultPolicy: FaultIgnore,
		indexPolicy: IndexUnchecked,
	}
}

// Option configures a Holder.
type Option func(*options)

// WithQueueSize sets the action queue capacity. Values below 1 mean 1.
func WithQueueSize(n int) Option {
	return func(o *options) {
		o.queueSize = max(n, 1)
	}
}

// WithSubscriberBuffer sets each subscriber's channel capacity. Values
// below 1 mean 1.
func WithSubscriberBuffer(n int) Option {
	return func(o *options) {
		o.subBuffer = max(n, 1)
	}
}

// WithFaultPolicy sets what a fault does to the state.
func WithFaultPolicy(p FaultPolicy) Option {
	return func(o *options) {
		o.faultPolicy = p
	}
}

// WithIndexPolicy sets whether index actions are bounds-checked.
func WithIndexPolicy(p IndexPolicy) Option {
	return func(o *options) {
		o.indexPolicy = p
	}
}

// WithFaultHandler registers fn to be called on the worker goroutine for
// every fault, whatever the fault policy.
func WithFaultHandler(fn func(Action, error)) Option {
	return func(o *options) {
		o.faultHandler = fn
	}
}

// WithSession tags the holder's log entries.
func WithSession(id string) Option {
	return func(o *options) {
		o.session = id
	}
}
