package alertrelay_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertrelay"
)

type recorder struct {
	mu   sync.Mutex
	recs []alert.Record
}

func (r *recorder) handle(rec alert.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
}

func (r *recorder) records() []alert.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]alert.Record(nil), r.recs...)
}

type relayErrors struct {
	mu  sync.Mutex
	ops []string
}

func (c *relayErrors) AlertPublished(string, string) {}
func (c *relayErrors) ViewMounted(string)            {}
func (c *relayErrors) ViewTornDown(string)           {}
func (c *relayErrors) RelayError(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

type failingTransport struct {
	alertrelay.Transport
}

func (failingTransport) Publish(context.Context, []byte) error {
	return errors.New("broken pipe")
}

func startRelay(t *testing.T, bus *alert.Bus, tr alertrelay.Transport, opts ...alertrelay.Option) *alertrelay.Relay {
	t.Helper()
	r := alertrelay.New(bus, tr, opts...)
	require.NoError(t, r.Start(context.Background()))
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRelay_ForwardsBetweenBuses(t *testing.T) {
	t.Parallel()

	tr := alertrelay.NewMemoryTransport()
	busA, busB := alert.NewBus(), alert.NewBus()
	relayA := startRelay(t, busA, tr)
	startRelay(t, busB, tr)

	var onA, onB recorder
	busA.SubscribeAll(onA.handle)
	busB.SubscribeAll(onB.handle)

	busA.Success("Saved", alert.WithGroup("form1"), alert.WithAutoClose())

	require.Len(t, onA.records(), 1, "no echo on the sending bus")
	got := onB.records()
	require.Len(t, got, 1)
	assert.Equal(t, "form1", got[0].ID)
	assert.Equal(t, alert.TypeSuccess, got[0].Type)
	assert.Equal(t, "Saved", got[0].Message)
	assert.True(t, got[0].AutoClose)
	assert.Equal(t, relayA.ID(), got[0].Origin)
}

func TestRelay_ClearSignalsTravel(t *testing.T) {
	t.Parallel()

	tr := alertrelay.NewMemoryTransport()
	busA, busB := alert.NewBus(), alert.NewBus()
	startRelay(t, busA, tr)
	startRelay(t, busB, tr)

	var onB recorder
	busB.Subscribe("", onB.handle)

	busA.Clear("")
	got := onB.records()
	require.Len(t, got, 1)
	assert.True(t, got[0].IsClear())
}

func TestRelay_NoLoopWithThreeNodes(t *testing.T) {
	t.Parallel()

	tr := alertrelay.NewMemoryTransport()
	buses := []*alert.Bus{alert.NewBus(), alert.NewBus(), alert.NewBus()}
	counts := make([]*recorder, len(buses))
	for i, b := range buses {
		startRelay(t, b, tr)
		counts[i] = &recorder{}
		b.SubscribeAll(counts[i].handle)
	}

	buses[1].Info("hello")

	for i, c := range counts {
		assert.Len(t, c.records(), 1, "bus %d", i)
	}
}

func TestRelay_IgnoresForeignGarbageAndOwnEcho(t *testing.T) {
	t.Parallel()

	tr := alertrelay.NewMemoryTransport()
	metrics := &relayErrors{}
	bus := alert.NewBus()
	relay := startRelay(t, bus, tr, alertrelay.WithCollector(metrics), alertrelay.WithInstanceID("node-1"))
	assert.Equal(t, "node-1", relay.ID())

	var got recorder
	bus.SubscribeAll(got.handle)

	require.NoError(t, tr.Publish(context.Background(), []byte("{not json")))
	own, err := alertrelay.Encode("node-1", alert.Record{ID: "x", Type: alert.TypeInfo, Message: "own"})
	require.NoError(t, err)
	require.NoError(t, tr.Publish(context.Background(), own))

	assert.Empty(t, got.records())
	assert.Equal(t, []string{"decode"}, metrics.ops)
}

func TestRelay_PublishFailureDoesNotBreakLocalDelivery(t *testing.T) {
	t.Parallel()

	metrics := &relayErrors{}
	bus := alert.NewBus()
	startRelay(t, bus, failingTransport{alertrelay.NewMemoryTransport()}, alertrelay.WithCollector(metrics))

	var got recorder
	bus.SubscribeAll(got.handle)
	bus.Error("Oops")

	assert.Len(t, got.records(), 1)
	assert.Equal(t, []string{"publish"}, metrics.ops)
}

func TestRelay_Lifecycle(t *testing.T) {
	t.Parallel()

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, alertrelay.New(nil, alertrelay.NewMemoryTransport()).Start(context.Background()), alertrelay.ErrNilBus)
		assert.ErrorIs(t, alertrelay.New(alert.NewBus(), nil).Start(context.Background()), alertrelay.ErrNilTransport)
	})

	t.Run("start twice", func(t *testing.T) {
		t.Parallel()
		r := startRelay(t, alert.NewBus(), alertrelay.NewMemoryTransport())
		assert.ErrorIs(t, r.Start(context.Background()), alertrelay.ErrAlreadyStarted)
	})

	t.Run("close detaches", func(t *testing.T) {
		t.Parallel()
		tr := alertrelay.NewMemoryTransport()
		busA, busB := alert.NewBus(), alert.NewBus()
		relayA := startRelay(t, busA, tr)
		startRelay(t, busB, tr)

		require.Equal(t, 1, busA.Subscribers())
		require.NoError(t, relayA.Close())
		require.NoError(t, relayA.Close())
		assert.Equal(t, 0, busA.Subscribers())
		assert.ErrorIs(t, relayA.Start(context.Background()), alertrelay.ErrClosed)

		var onA recorder
		busA.SubscribeAll(onA.handle)
		busB.Info("after close")
		assert.Empty(t, onA.records())
	})

	t.Run("closed memory transport", func(t *testing.T) {
		t.Parallel()
		tr := alertrelay.NewMemoryTransport()
		require.NoError(t, tr.Close())
		err := alertrelay.New(alert.NewBus(), tr).Start(context.Background())
		assert.ErrorIs(t, err, alertrelay.ErrClosed)
	})
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	data, err := alertrelay.Encode("node-a", alert.Record{ID: "g", Type: alert.TypeWarning, Message: "m", Fade: true})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"origin":"node-a","record":{"id":"g","type":"Warning","message":"m","fade":true,"origin":"node-a"}}`,
		string(data),
	)

	env, err := alertrelay.Decode([]byte(`{"origin":"node-b","record":{"id":"g","type":"Info","message":"hi"}}`))
	require.NoError(t, err)
	assert.Equal(t, "node-b", env.Origin)
	assert.Equal(t, "node-b", env.Record.Origin)
	assert.Equal(t, alert.TypeInfo, env.Record.Type)

	_, err = alertrelay.Decode([]byte(`[]`))
	assert.Error(t, err)
}

func TestParseDriver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    alertrelay.Driver
		wantErr bool
	}{
		{"", alertrelay.DriverNone, false},
		{"none", alertrelay.DriverNone, false},
		{" Redis ", alertrelay.DriverRedis, false},
		{"NATS", alertrelay.DriverNATS, false},
		{"memory", alertrelay.DriverMemory, false},
		{"kafka", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := alertrelay.ParseDriver(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, alertrelay.ErrUnknownDriver)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
