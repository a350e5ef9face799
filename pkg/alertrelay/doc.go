// Package alertrelay carries alerts between processes that each own an
// alert.Bus.
//
// A Relay taps its local bus, wraps every locally raised record in an
// envelope stamped with the relay's instance id and hands it to a Transport.
// Envelopes coming back from the transport are republished on the local bus
// unless they carry the relay's own id. Republished records keep their
// origin, so they are never forwarded again.
//
// Three transports are provided: Redis Pub/Sub, NATS core subjects and an
// in-process MemoryTransport used by tests and single-node setups.
//
//	rdb, _ := redis.Connect(ctx, redisCfg)
//	relay := alertrelay.New(bus, alertrelay.NewRedisTransport(rdb))
//	if err := relay.Start(ctx); err != nil {
//	    return err
//	}
//	defer relay.Close()
package alertrelay
