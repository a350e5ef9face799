package alertmetrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "alertkit"

// Prometheus implements Collector with Prometheus counters and gauges.
type Prometheus struct {
	published   *prometheus.CounterVec
	views       *prometheus.GaugeVec
	relayErrors *prometheus.CounterVec
}

// NewPrometheus registers the alertkit metrics on reg:
//   - alertkit_alerts_published_total{group,kind}
//   - alertkit_views_active{group}
//   - alertkit_relay_errors_total{op}
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	p := &Prometheus{
		published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_published_total",
				Help:      "Alerts and clear signals published on the bus",
			},
			[]string{"group", "kind"},
		),
		views: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "views_active",
				Help:      "Mounted alert views",
			},
			[]string{"group"},
		),
		relayErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relay_errors_total",
				Help:      "Failed relay operations",
			},
			[]string{"op"},
		),
	}

	for _, c := range []prometheus.Collector{p.published, p.views, p.relayErrors} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Join(ErrRegister, err)
		}
	}

	return p, nil
}

// AlertPublished increments the published counter.
func (p *Prometheus) AlertPublished(group, kind string) {
	p.published.WithLabelValues(group, kind).Inc()
}

// ViewMounted increments the active views gauge.
func (p *Prometheus) ViewMounted(group string) {
	p.views.WithLabelValues(group).Inc()
}

func (p *Prometheus) ViewTornDown(group string) {
	p.views.WithLabelValues(group).Dec()
}

func (p *Prometheus) RelayError(op string) {
	p.relayErrors.WithLabelValues(op).Inc()
}
