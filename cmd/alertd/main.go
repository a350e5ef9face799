package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/alertkit/modules/alerts"
	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertmetrics"
	"github.com/dmitrymomot/alertkit/pkg/alertrelay"
	"github.com/dmitrymomot/alertkit/pkg/config"
	"github.com/dmitrymomot/alertkit/pkg/httpserver"
	"github.com/dmitrymomot/alertkit/pkg/logger"
	"github.com/dmitrymomot/alertkit/pkg/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "alertd: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithFileOutput(cfg.Log),
		logger.WithContextExtractors(requestIDExtractor),
	)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := alertmetrics.NewPrometheus(reg)
	if err != nil {
		return err
	}

	bus := alert.NewBus(alert.WithLogger(log), alert.WithCollector(metrics))
	defer bus.Close()

	relay, checks, closers, err := setupRelay(ctx, cfg, bus, log, metrics)
	if err != nil {
		return err
	}
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil {
				log.Warn("close failed", logger.Error(cerr))
			}
		}
	}()
	if relay != nil {
		if err := relay.Start(ctx); err != nil {
			return err
		}
	}

	svc := alerts.NewService(cfg.Alerts, bus,
		alerts.WithLogger(log),
		alerts.WithCollector(metrics),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Mount(cfg.Alerts.BasePath, svc.Handle())
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, checks...))
	if cfg.DemoEnabled {
		mountDemo(r, bus, cfg.Alerts.BasePath)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("alertd listening", slog.String("addr", cfg.HTTP.Addr), slog.String("relay", string(cfg.Relay.Driver)))
		}),
		httpserver.WithDrainHook(func() { _ = svc.Close() }),
		httpserver.WithStopHook(func(l *slog.Logger) { l.Info("alertd stopped") }),
	)
	return srv.Run(ctx, r)
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// setupRelay builds the relay selected by ALERT_RELAY together with its
// readiness checks and the resources to release on exit.
func setupRelay(ctx context.Context, cfg appConfig, bus *alert.Bus, log *slog.Logger, metrics alertmetrics.Collector) (*alertrelay.Relay, []httpserver.HealthCheck, []io.Closer, error) {
	driver, err := alertrelay.ParseDriver(string(cfg.Relay.Driver))
	if err != nil {
		return nil, nil, nil, err
	}

	var (
		transport alertrelay.Transport
		checks    []httpserver.HealthCheck
		closers   []io.Closer
	)

	switch driver {
	case alertrelay.DriverNone:
		return nil, nil, nil, nil
	case alertrelay.DriverMemory:
		mem := alertrelay.NewMemoryTransport()
		transport = mem
		closers = append(closers, mem)
	case alertrelay.DriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		transport = alertrelay.NewRedisTransport(client, cfg.Relay.RedisChannel)
		checks = append(checks, httpserver.HealthCheck{Name: "redis", Check: redis.Healthcheck(client)})
		closers = append(closers, client)
	case alertrelay.DriverNATS:
		conn, err := alertrelay.ConnectNATS(cfg.Relay.NATSURL, cfg.Service)
		if err != nil {
			return nil, nil, nil, errors.Join(alertrelay.ErrSubscribeFailed, err)
		}
		transport = alertrelay.NewNATSTransport(conn, cfg.Relay.NATSSubject)
		checks = append(checks, httpserver.HealthCheck{Name: "nats", Check: alertrelay.NATSHealthcheck(conn)})
		closers = append(closers, closerFunc(func() error { return conn.Drain() }))
	}

	relay := alertrelay.New(bus, transport,
		alertrelay.WithLogger(log),
		alertrelay.WithCollector(metrics),
	)
	closers = append(closers, relay)
	return relay, checks, closers, nil
}
