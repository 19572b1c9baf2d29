package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the metrics collector.
type Config struct {
	// Enabled toggles metric collection. A disabled collector still accepts
	// record calls; they are no-ops.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix. Default: "phiguard".
	Namespace string `yaml:"namespace"`
}

// Collector owns all Prometheus metrics for one guard node.
type Collector struct {
	config   *Config
	registry *prometheus.Registry

	messagesTotal     *prometheus.CounterVec
	channelRisk       *prometheus.GaugeVec
	channelSafety     *prometheus.GaugeVec
	handoffsTotal     prometheus.Counter
	lockdownActive    prometheus.Gauge
	saveFailuresTotal prometheus.Counter
	analysisDuration  *prometheus.HistogramVec
}

// NewCollector creates and registers all guard metrics with registry.
// If registry is nil a private registry is created.
func NewCollector(cfg *Config, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = &Config{Enabled: true}
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "phiguard"
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		messagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "messages_total",
				Help:      "Total number of messages processed by the guard",
			},
			[]string{"direction", "language", "level"},
		),

		channelRisk: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "channel_risk",
				Help:      "Current channel risk level",
			},
			[]string{"direction"},
		),

		channelSafety: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "channel_safety",
				Help:      "Current channel safety level",
			},
			[]string{"direction"},
		),

		handoffsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "handoffs_total",
				Help:      "Number of messages that met the hand-off condition",
			},
		),

		lockdownActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "lockdown_active",
				Help:      "Whether lockdown is currently active (0 or 1)",
			},
		),

		saveFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "state_save_failures_total",
				Help:      "Number of guard state persistence writes that failed",
			},
		),

		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of per-message analysis and state update",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
			},
			[]string{"direction"},
		),
	}

	registry.MustRegister(
		c.messagesTotal,
		c.channelRisk,
		c.channelSafety,
		c.handoffsTotal,
		c.lockdownActive,
		c.saveFailuresTotal,
		c.analysisDuration,
	)

	return c
}

// RecordMessage records one processed message.
func (c *Collector) RecordMessage(direction, language, level string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.messagesTotal.WithLabelValues(direction, language, level).Inc()
	c.analysisDuration.WithLabelValues(direction).Observe(duration.Seconds())
}

// SetChannel updates the per-direction risk and safety gauges.
func (c *Collector) SetChannel(direction string, risk, safety float64) {
	if !c.config.Enabled {
		return
	}
	c.channelRisk.WithLabelValues(direction).Set(risk)
	c.channelSafety.WithLabelValues(direction).Set(safety)
}

// RecordHandoff counts one message that met the hand-off condition.
func (c *Collector) RecordHandoff() {
	if !c.config.Enabled {
		return
	}
	c.handoffsTotal.Inc()
}

// SetLockdown reflects the lockdown toggle.
func (c *Collector) SetLockdown(active bool) {
	if !c.config.Enabled {
		return
	}
	if active {
		c.lockdownActive.Set(1)
	} else {
		c.lockdownActive.Set(0)
	}
}

// RecordSaveFailure counts one failed persistence write.
func (c *Collector) RecordSaveFailure() {
	if !c.config.Enabled {
		return
	}
	c.saveFailuresTotal.Inc()
}

// Handler returns the HTTP handler serving this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
