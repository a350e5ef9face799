// Package redis connects to the Redis server used by the alert relay.
//
// Connect parses the URL from Config, pings with retries and returns a ready
// go-redis client; Healthcheck adapts that client to the server's readiness
// probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//	transport := alertrelay.NewRedisTransport(client, "")
package redis
