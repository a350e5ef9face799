package alerts

import "time"

// Config holds the alert endpoint settings.
type Config struct {
	// BasePath is where the router is mounted; dismiss URLs are built from it.
	BasePath       string        `env:"ALERT_BASE_PATH" envDefault:"/alerts"`
	Fade           bool          `env:"ALERT_FADE" envDefault:"true"`
	AutoCloseDelay time.Duration `env:"ALERT_AUTO_CLOSE_DELAY" envDefault:"3s"`
	FadeDelay      time.Duration `env:"ALERT_FADE_DELAY" envDefault:"250ms"`
	MaxViews       int           `env:"ALERT_MAX_VIEWS" envDefault:"4096"`
	MaxClients     int           `env:"ALERT_MAX_CLIENTS" envDefault:"4096"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		BasePath:       "/alerts",
		Fade:           true,
		AutoCloseDelay: 3 * time.Second,
		FadeDelay:      250 * time.Millisecond,
		MaxViews:       4096,
		MaxClients:     4096,
	}
}
