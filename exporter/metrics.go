package exporter

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const exporterName = "i2pd_webconsole_exporter"

// selfMetrics tracks the scrapes served by the exporter. They live in their
// own registry so they never mix into the rendered web console document.
type selfMetrics struct {
	registry *prometheus.Registry
	scrapes  *prometheus.CounterVec
	duration prometheus.Histogram
}

func newSelfMetrics() *selfMetrics {
	m := &selfMetrics{
		registry: prometheus.NewRegistry(),
		scrapes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: exporterName,
			Name:      "scrapes_total",
			Help:      "i2pd_webconsole_exporter: scrapes of the web console by result",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: exporterName,
			Name:      "scrape_duration_seconds",
			Help:      "i2pd_webconsole_exporter: duration of a web console scrape",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.scrapes,
		m.duration,
		versioncollector.NewCollector(exporterName),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *selfMetrics) observe(success bool, seconds float64) {
	result := "success"
	if !success {
		result = "error"
	}
	m.scrapes.WithLabelValues(result).Inc()
	m.duration.Observe(seconds)
}

func (m *selfMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      log.StandardLogger(),
		ErrorHandling: promhttp.ContinueOnError,
	})
}
