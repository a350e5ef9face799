package alertrelay

import "strings"

// Driver selects the relay transport.
type Driver string

const (
	DriverNone   Driver = "none"
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"
	DriverNATS   Driver = "nats"
)

// Config selects and configures the relay transport.
type Config struct {
	Driver       Driver `env:"ALERT_RELAY" envDefault:"none"`
	RedisChannel string `env:"ALERT_RELAY_REDIS_CHANNEL" envDefault:"alertkit:alerts"`
	NATSURL      string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	NATSSubject  string `env:"ALERT_RELAY_NATS_SUBJECT" envDefault:"alertkit.alerts"`
}

// ParseDriver normalises s; an empty string means DriverNone.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DriverNone, nil
	case DriverNone, DriverMemory, DriverRedis, DriverNATS:
		return d, nil
	default:
		return "", ErrUnknownDriver
	}
}
