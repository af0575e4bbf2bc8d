package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bahjat/email-insight/internal/model"
	"github.com/Bahjat/email-insight/internal/platform/errs"
)

const namespace = "email_insight"

// Metrics owns a dedicated Prometheus registry and the collectors
// the service reports to.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	analyses     *prometheus.CounterVec
	links        *prometheus.CounterVec
	textLength   prometheus.Histogram
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Email analyses by outcome.",
		}, []string{"outcome"}),
		links: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_total",
			Help:      "Extracted links by category.",
		}, []string{"category"}),
		textLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "text_length_chars",
			Help:      "Visible text length of analyzed emails.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.analyses,
		m.links,
		m.textLength,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveAnalysis records the outcome of one analysis. On success the
// per-category link counters and the text length histogram are updated.
func (m *Metrics) ObserveAnalysis(result *model.AnalysisResult, err error) {
	if err != nil {
		m.analyses.WithLabelValues(Outcome(err)).Inc()
		return
	}

	m.analyses.WithLabelValues("success").Inc()
	m.textLength.Observe(float64(result.TextLength))
	for _, l := range result.Links {
		m.links.WithLabelValues(string(l.Type)).Inc()
	}
}

// Outcome maps an analysis error to its metric label.
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	return errs.KindOf(err).String()
}
