// Package alertmetrics defines the metrics hooks used by the alert bus, views
// and relays, with a no-op and a Prometheus implementation.
//
//	reg := prometheus.NewRegistry()
//	collector, err := alertmetrics.NewPrometheus(reg)
//	if err != nil {
//		return err
//	}
//	bus := alert.NewBus(alert.WithCollector(collector))
package alertmetrics
