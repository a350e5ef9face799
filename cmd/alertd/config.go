package main

import (
	"github.com/dmitrymomot/alertkit/modules/alerts"
	"github.com/dmitrymomot/alertkit/pkg/alertrelay"
	"github.com/dmitrymomot/alertkit/pkg/httpserver"
	"github.com/dmitrymomot/alertkit/pkg/logger"
	"github.com/dmitrymomot/alertkit/pkg/redis"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Service     string `env:"APP_NAME" envDefault:"alertd"`
	DemoEnabled bool   `env:"ALERT_DEMO" envDefault:"true"`

	Log    logger.FileConfig
	HTTP   httpserver.Config
	Alerts alerts.Config
	Relay  alertrelay.Config
	Redis  redis.Config
}
