package alertrelay

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertmetrics"
	"github.com/dmitrymomot/alertkit/pkg/broadcast"
	"github.com/dmitrymomot/alertkit/pkg/logger"
)

// Relay bridges one bus to a Transport.
type Relay struct {
	bus       *alert.Bus
	transport Transport
	id        string
	logger    *slog.Logger
	collector alertmetrics.Collector

	mu      sync.Mutex
	ctx     context.Context
	sub     *broadcast.Subscription
	stop    func() error
	started bool
	closed  bool
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the relay logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCollector sets the metrics collector for relay errors.
func WithCollector(c alertmetrics.Collector) Option {
	return func(r *Relay) {
		if c != nil {
			r.collector = c
		}
	}
}

// WithInstanceID overrides the random instance id.
func WithInstanceID(id string) Option {
	return func(r *Relay) {
		if id != "" {
			r.id = id
		}
	}
}

// New creates a relay between bus and transport. It does nothing until Start.
func New(bus *alert.Bus, transport Transport, opts ...Option) *Relay {
	r := &Relay{
		bus:       bus,
		transport: transport,
		id:        uuid.NewString(),
		logger:    logger.Discard(),
		collector: alertmetrics.Nop{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the origin stamped on forwarded records.
func (r *Relay) ID() string { return r.id }

// Start subscribes to the transport first and then taps the bus. ctx bounds
// the relay's transport operations; Close stops it either way.
func (r *Relay) Start(ctx context.Context) error {
	if r.bus == nil {
		return ErrNilBus
	}
	if r.transport == nil {
		return ErrNilTransport
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if r.started {
		return ErrAlreadyStarted
	}

	stop, err := r.transport.Subscribe(ctx, r.receive)
	if err != nil {
		r.collector.RelayError("subscribe")
		return err
	}

	r.ctx = ctx
	r.stop = stop
	r.sub = r.bus.SubscribeAll(r.forward)
	r.started = true

	r.logger.InfoContext(ctx, "alert relay started",
		logger.Component("alertrelay"),
		slog.String("instance_id", r.id),
	)
	return nil
}

// Close detaches from the bus and the transport. It is idempotent.
func (r *Relay) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	sub, stop := r.sub, r.stop
	r.sub, r.stop = nil, nil
	r.mu.Unlock()

	sub.Unsubscribe()
	if stop != nil {
		return stop()
	}
	return nil
}

// forward sends locally raised records to the transport.
func (r *Relay) forward(rec alert.Record) {
	if rec.Origin != "" {
		return
	}

	r.mu.Lock()
	ctx, closed := r.ctx, r.closed
	r.mu.Unlock()
	if closed {
		return
	}

	payload, err := Encode(r.id, rec)
	if err != nil {
		r.fail(ctx, "encode", err)
		return
	}
	if err := r.transport.Publish(ctx, payload); err != nil {
		r.fail(ctx, "publish", err)
	}
}

// receive republishes foreign envelopes on the local bus.
func (r *Relay) receive(payload []byte) {
	env, err := Decode(payload)
	if err != nil {
		r.fail(context.Background(), "decode", err)
		return
	}
	if env.Origin == "" || env.Origin == r.id {
		return
	}

	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return
	}

	r.bus.Publish(env.Record)
}

func (r *Relay) fail(ctx context.Context, op string, err error) {
	r.collector.RelayError(op)
	r.logger.ErrorContext(ctx, "alert relay failure",
		logger.Component("alertrelay"),
		logger.Event(op),
		logger.Error(err),
	)
}
