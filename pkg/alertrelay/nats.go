package alertrelay

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultNATSSubject is the subject used when none is configured.
const DefaultNATSSubject = "alertkit.alerts"

const natsFlushTimeout = 5 * time.Second

// NATSTransport relays envelopes over a NATS core subject. The connection is
// owned by the caller.
type NATSTransport struct {
	conn    *nats.Conn
	subject string
}

// NewNATSTransport publishes on subject, or DefaultNATSSubject when empty.
// The caller owns conn.
func NewNATSTransport(conn *nats.Conn, subject string) *NATSTransport {
	if subject == "" {
		subject = DefaultNATSSubject
	}
	return &NATSTransport{conn: conn, subject: subject}
}

// Publish sends payload on the subject.
func (t *NATSTransport) Publish(_ context.Context, payload []byte) error {
	return t.conn.Publish(t.subject, payload)
}

// Subscribe flushes the interest to the server before returning.
func (t *NATSTransport) Subscribe(_ context.Context, fn func(payload []byte)) (func() error, error) {
	sub, err := t.conn.Subscribe(t.subject, func(msg *nats.Msg) {
		fn(msg.Data)
	})
	if err != nil {
		return nil, errors.Join(ErrSubscribeFailed, err)
	}
	if err := t.conn.FlushTimeout(natsFlushTimeout); err != nil {
		_ = sub.Unsubscribe()
		return nil, errors.Join(ErrSubscribeFailed, err)
	}
	return sub.Unsubscribe, nil
}

// ConnectNATS dials url with reconnects enabled.
func ConnectNATS(url, name string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
	)
}

// NATSHealthcheck reports ErrNATSDisconnected while conn is not connected.
func NATSHealthcheck(conn *nats.Conn) func(context.Context) error {
	return func(context.Context) error {
		if !conn.IsConnected() {
			return ErrNATSDisconnected
		}
		return nil
	}
}
