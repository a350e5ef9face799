// Package config loads typed configuration structs from environment variables.
//
// Values come from the process environment, optionally seeded from .env files
// via github.com/joho/godotenv, and are parsed with github.com/caarlos0/env/v11
// using `env` and `envDefault` struct tags:
//
//	type ServerConfig struct {
//		Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each struct type is parsed once per process and served from a cache
// afterwards. Reset drops the cache, which tests use between cases.
package config
