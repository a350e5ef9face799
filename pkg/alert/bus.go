package alert

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/alertkit/pkg/alertmetrics"
	"github.com/dmitrymomot/alertkit/pkg/broadcast"
	"github.com/dmitrymomot/alertkit/pkg/logger"
)

// Handler receives records delivered by the bus.
type Handler func(Record)

// Bus is a group-filtered multicast channel of alert records. All groups share a
// single subject; each subscription filters by group id.
type Bus struct {
	subject   *broadcast.Subject[Record]
	logger    *slog.Logger
	collector alertmetrics.Collector
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the logger used for publish debug records.
func WithLogger(l *slog.Logger) BusOption {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithCollector sets the metrics collector.
func WithCollector(c alertmetrics.Collector) BusOption {
	return func(b *Bus) {
		if c != nil {
			b.collector = c
		}
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subject:   broadcast.NewSubject[Record](),
		logger:    logger.Discard(),
		collector: alertmetrics.Nop{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe delivers every record published for groupID, clear signals
// included. An empty groupID means DefaultGroup.
func (b *Bus) Subscribe(groupID string, fn Handler) *broadcast.Subscription {
	groupID = groupOrDefault(groupID)
	if fn == nil {
		return b.subject.Subscribe(nil)
	}
	return b.subject.SubscribeFunc(
		func(rec Record) bool { return rec.ID == groupID },
		broadcast.Handler[Record](fn),
	)
}

// OnAlert is an alias of Subscribe.
func (b *Bus) OnAlert(groupID string, fn Handler) *broadcast.Subscription {
	return b.Subscribe(groupID, fn)
}

// SubscribeAll delivers every record regardless of group.
func (b *Bus) SubscribeAll(fn Handler) *broadcast.Subscription {
	if fn == nil {
		return b.subject.Subscribe(nil)
	}
	return b.subject.Subscribe(broadcast.Handler[Record](fn))
}

// Publish defaults the group id and delivers rec to the matching subscribers.
func (b *Bus) Publish(rec Record) {
	rec.ID = groupOrDefault(rec.ID)

	b.collector.AlertPublished(rec.ID, rec.Kind())
	b.logger.LogAttrs(context.Background(), slog.LevelDebug, "alert published",
		logger.AlertGroup(rec.ID),
		logger.AlertType(string(rec.Type)),
		logger.Origin(rec.Origin),
	)

	b.subject.Publish(rec)
}

// Alert is an alias of Publish.
func (b *Bus) Alert(rec Record) {
	b.Publish(rec)
}

// Clear publishes the clear signal for groupID (DefaultGroup when empty).
func (b *Bus) Clear(groupID string) {
	b.Publish(Record{ID: groupOrDefault(groupID)})
}

// Success publishes a success alert.
func (b *Bus) Success(message string, opts ...Option) {
	b.emit(TypeSuccess, message, opts)
}

// Error publishes an error alert.
func (b *Bus) Error(message string, opts ...Option) {
	b.emit(TypeError, message, opts)
}

// Info publishes an info alert.
func (b *Bus) Info(message string, opts ...Option) {
	b.emit(TypeInfo, message, opts)
}

// Warn publishes a warning alert.
func (b *Bus) Warn(message string, opts ...Option) {
	b.emit(TypeWarning, message, opts)
}

// Subscribers returns the number of active subscriptions across all groups.
func (b *Bus) Subscribers() int {
	return b.subject.Len()
}

// Close drops every subscription; later publishes are no-ops.
func (b *Bus) Close() error {
	return b.subject.Close()
}

func (b *Bus) emit(t Type, message string, opts []Option) {
	var rec Record
	for _, opt := range opts {
		opt(&rec)
	}
	rec.Type = t
	rec.Message = message
	b.Publish(rec)
}
