package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters shared across the service
type Metrics struct {
	CacheHits        *prometheus.CounterVec
	CacheMisses      *prometheus.CounterVec
	UpstreamRequests *prometheus.CounterVec
}

// New registers the service counters with the given registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "channeled_cache_hits_total",
			Help: "Cache hits per operation.",
		}, []string{"operation"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "channeled_cache_misses_total",
			Help: "Cache misses per operation.",
		}, []string{"operation"}),
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "channeled_upstream_requests_total",
			Help: "Upstream TMDB requests per endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
	}
}
