package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/traffic_ops_console/internal/service"
)

// Collector owns the console's Prometheus registry: per-request counters
// and latencies plus a periodically sampled store health gauge.
type Collector struct {
	registry *prometheus.Registry
	store    service.Store

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	storeUp         prometheus.Gauge
}

func NewCollector(store service.Store) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		store:    store,
	}

	c.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "console_http_requests_total",
		Help: "HTTP requests served, by method, route and status",
	}, []string{"method", "path", "status"})
	reg.MustRegister(c.requestsTotal)

	c.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "console_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	reg.MustRegister(c.requestDuration)

	c.storeUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "console_store_up",
		Help: "Backing store reachability (1=up, 0=down)",
	})
	reg.MustRegister(c.storeUp)

	return c
}

// Start samples store health until ctx is cancelled.
func (c *Collector) Start(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	c.sampleStore(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sampleStore(ctx)
		}
	}
}

func (c *Collector) sampleStore(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		c.storeUp.Set(0)
		return
	}
	c.storeUp.Set(1)
}

// Handler exposes the registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records one observation per request. Routes are labeled by
// template (c.FullPath) so path parameters do not blow up cardinality.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		c.requestsTotal.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.requestDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
