package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements QueryHooks, CacheHooks and HTTPHooks by recording
// Prometheus metrics.
type Prometheus struct {
	ParseDuration *prometheus.HistogramVec
	Packages      prometheus.Gauge
	Queries       *prometheus.CounterVec
	CacheEvents   *prometheus.CounterVec
	CacheBytes    prometheus.Counter
	Requests      *prometheus.CounterVec
	RequestTime   *prometheus.HistogramVec
}

// NewPrometheus registers the dpkgview metrics with reg.
// Use prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		ParseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dpkgview_parse_seconds",
			Help:    "Time spent reading and parsing the control file.",
			Buckets: prometheus.DefBuckets,
		}, []string{"result"}),
		Packages: f.NewGauge(prometheus.GaugeOpts{
			Name: "dpkgview_stanzas",
			Help: "Number of stanzas found by the most recent parse.",
		}),
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dpkgview_queries_total",
			Help: "Total number of names and detail queries.",
		}, []string{"kind", "result"}),
		CacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dpkgview_cache_events_total",
			Help: "Cache hits, misses and writes.",
		}, []string{"key_type", "event"}),
		CacheBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "dpkgview_cache_written_bytes_total",
			Help: "Total bytes written to the cache.",
		}),
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dpkgview_http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),
		RequestTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dpkgview_http_request_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (p *Prometheus) OnParseStart(context.Context, string) {}

func (p *Prometheus) OnParseComplete(_ context.Context, _ string, records int, d time.Duration, err error) {
	p.ParseDuration.WithLabelValues(result(err)).Observe(d.Seconds())
	if err == nil {
		p.Packages.Set(float64(records))
	}
}

func (p *Prometheus) OnQuery(_ context.Context, kind string, _ time.Duration, err error) {
	p.Queries.WithLabelValues(kind, result(err)).Inc()
}

func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.CacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.CacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.CacheEvents.WithLabelValues(keyType, "set").Inc()
	p.CacheBytes.Add(float64(size))
}

func (p *Prometheus) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	p.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.RequestTime.WithLabelValues(method, route).Observe(d.Seconds())
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

var (
	_ QueryHooks = (*Prometheus)(nil)
	_ CacheHooks = (*Prometheus)(nil)
	_ HTTPHooks  = (*Prometheus)(nil)
)
