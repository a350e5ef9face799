package alertrelay

import (
	"context"
	"slices"

	"github.com/dmitrymomot/alertkit/pkg/broadcast"
)

// Transport moves encoded envelopes between relays. Subscribe delivers every
// payload published by any relay, the caller's own included, until the
// returned stop function is called.
type Transport interface {
	Publish(ctx context.Context, payload []byte) error
	Subscribe(ctx context.Context, fn func(payload []byte)) (stop func() error, err error)
}

// MemoryTransport connects relays living in the same process. Delivery is
// synchronous.
type MemoryTransport struct {
	subject *broadcast.Subject[[]byte]
}

// NewMemoryTransport returns an open in-process transport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{subject: broadcast.NewSubject[[]byte]()}
}

// Publish delivers payload to every subscriber. It returns ErrClosed after Close.
func (t *MemoryTransport) Publish(_ context.Context, payload []byte) error {
	if t.subject.Closed() {
		return ErrClosed
	}
	t.subject.Publish(slices.Clone(payload))
	return nil
}

// Subscribe registers fn; the returned stop func detaches it.
func (t *MemoryTransport) Subscribe(_ context.Context, fn func(payload []byte)) (func() error, error) {
	if t.subject.Closed() {
		return nil, ErrClosed
	}
	sub := t.subject.Subscribe(broadcast.Handler[[]byte](fn))
	return func() error {
		sub.Unsubscribe()
		return nil
	}, nil
}

// Close detaches every subscriber. Later publishes fail with ErrClosed.
func (t *MemoryTransport) Close() error {
	return t.subject.Close()
}
