package alertrelay

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisChannel is the Pub/Sub channel used when none is configured.
const DefaultRedisChannel = "alertkit:alerts"

// RedisTransport relays envelopes over Redis Pub/Sub. The client is owned by
// the caller.
type RedisTransport struct {
	client  redis.UniversalClient
	channel string
}

// NewRedisTransport publishes on channel, or DefaultRedisChannel when empty.
// The caller owns client.
func NewRedisTransport(client redis.UniversalClient, channel string) *RedisTransport {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisTransport{client: client, channel: channel}
}

// Publish sends payload on the channel.
func (t *RedisTransport) Publish(ctx context.Context, payload []byte) error {
	return t.client.Publish(ctx, t.channel, payload).Err()
}

// Subscribe waits for the subscription to be confirmed before it returns, so
// nothing published afterwards is missed.
func (t *RedisTransport) Subscribe(ctx context.Context, fn func(payload []byte)) (func() error, error) {
	ps := t.client.Subscribe(ctx, t.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, errors.Join(ErrSubscribeFailed, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range ps.Channel() {
			fn([]byte(msg.Payload))
		}
	}()

	return func() error {
		err := ps.Close()
		<-done
		return err
	}, nil
}
