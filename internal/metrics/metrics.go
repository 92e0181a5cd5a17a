package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/justintdct/CineVault/cinevault-go/internal/store"
)

// Metrics holds all Prometheus collectors for the CineVault Go backend.
// Collectors are usable immediately; Init registers them once at startup.
var Metrics = struct {
	RequestDuration      *prometheus.HistogramVec
	RequestsInFlight     prometheus.Gauge
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
	RefreshTotal         *prometheus.CounterVec
	RefreshSweepDuration prometheus.Histogram
}{
	RequestDuration: prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinevault_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	),
	RequestsInFlight: prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinevault_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	),
	CacheHits: prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinevault_cache_hits_total",
			Help: "Total Redis ranking cache hits.",
		},
	),
	CacheMisses: prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinevault_cache_misses_total",
			Help: "Total Redis ranking cache misses.",
		},
	),
	RefreshTotal: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinevault_stats_refresh_total",
			Help: "Total per-content stats refreshes, by result.",
		},
		[]string{"result"},
	),
	RefreshSweepDuration: prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinevault_stats_refresh_sweep_duration_seconds",
			Help:    "Duration of full refresh sweeps over the catalog.",
			Buckets: prometheus.DefBuckets,
		},
	),
}

// Init registers all collectors plus live gauges over the catalog and stats
// store. Call once at startup.
func Init(catalog *store.Catalog, stats *store.StatsStore) {
	prometheus.MustRegister(
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.CacheHits,
		Metrics.CacheMisses,
		Metrics.RefreshTotal,
		Metrics.RefreshSweepDuration,
	)

	if catalog != nil {
		prometheus.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "cinevault_catalog_size",
				Help: "Number of entries in the content catalog.",
			},
			func() float64 { return float64(catalog.Len()) },
		))
	}

	if stats != nil {
		prometheus.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "cinevault_registered_stats",
				Help: "Number of content entries with registered stats.",
			},
			func() float64 { return float64(stats.Len()) },
		))
	}
}
