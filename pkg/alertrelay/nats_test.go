package alertrelay_test

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertrelay"
)

func runNATSServer(t *testing.T) string {
	t.Helper()

	ns, err := server.NewServer(&server.Options{
		Host:   "127.0.0.1",
		Port:   server.RANDOM_PORT,
		NoLog:  true,
		NoSigs: true,
	})
	require.NoError(t, err)

	go ns.Start()
	if !ns.ReadyForConnections(10 * time.Second) {
		ns.Shutdown()
		t.Fatal("nats server did not start")
	}
	t.Cleanup(ns.Shutdown)
	return ns.ClientURL()
}

func TestNATSTransport_RelaysBetweenConnections(t *testing.T) {
	t.Parallel()

	url := runNATSServer(t)
	connA, err := alertrelay.ConnectNATS(url, "node-a")
	require.NoError(t, err)
	t.Cleanup(connA.Close)
	connB, err := alertrelay.ConnectNATS(url, "node-b")
	require.NoError(t, err)
	t.Cleanup(connB.Close)

	busA, busB := alert.NewBus(), alert.NewBus()
	startRelay(t, busA, alertrelay.NewNATSTransport(connA, ""))
	startRelay(t, busB, alertrelay.NewNATSTransport(connB, ""))

	received := make(chan alert.Record, 4)
	busB.Subscribe("form1", func(rec alert.Record) { received <- rec })

	busA.Warn("Disk almost full", alert.WithGroup("form1"))

	select {
	case rec := <-received:
		assert.Equal(t, alert.TypeWarning, rec.Type)
		assert.Equal(t, "Disk almost full", rec.Message)
		assert.NotEmpty(t, rec.Origin)
	case <-time.After(5 * time.Second):
		t.Fatal("alert was not relayed")
	}

	select {
	case rec := <-received:
		t.Fatalf("unexpected second delivery: %+v", rec)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNATSTransport_Unsubscribe(t *testing.T) {
	t.Parallel()

	url := runNATSServer(t)
	conn, err := alertrelay.ConnectNATS(url, "node")
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	tr := alertrelay.NewNATSTransport(conn, "test.alerts")
	got := make(chan []byte, 1)
	stop, err := tr.Subscribe(context.Background(), func(p []byte) { got <- p })
	require.NoError(t, err)

	require.NoError(t, tr.Publish(context.Background(), []byte("ping")))
	select {
	case p := <-got:
		assert.Equal(t, "ping", string(p))
	case <-time.After(5 * time.Second):
		t.Fatal("payload not delivered")
	}

	require.NoError(t, stop())
	require.NoError(t, tr.Publish(context.Background(), []byte("pong")))
	require.NoError(t, conn.Flush())
	select {
	case p := <-got:
		t.Fatalf("delivered after unsubscribe: %s", p)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNATSHealthcheck(t *testing.T) {
	t.Parallel()

	url := runNATSServer(t)
	conn, err := alertrelay.ConnectNATS(url, "health")
	require.NoError(t, err)

	check := alertrelay.NATSHealthcheck(conn)
	assert.NoError(t, check(context.Background()))

	conn.Close()
	assert.ErrorIs(t, check(context.Background()), alertrelay.ErrNATSDisconnected)
}
