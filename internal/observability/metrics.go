package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the surf data pipeline. A nil
// *Metrics is valid and records nothing, so tests and tools that do not
// care about metrics can skip the wiring.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec // labels: api={metadata,offsets,predictions}, outcome={success,error}
	CacheLookups     *prometheus.CounterVec // labels: cache={station_metadata,series_lru,series_dynamo}, result={hit,miss}
	Extractions      *prometheus.CounterVec // labels: outcome={window,no_window}
}

// NewMetrics creates and registers all pipeline metrics with the given
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wavewatch",
			Name:      "upstream_requests_total",
			Help:      "Total requests to NOAA APIs by endpoint and outcome.",
		}, []string{"api", "outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wavewatch",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by cache layer and result.",
		}, []string{"cache", "result"}),
		Extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wavewatch",
			Name:      "best_window_extractions_total",
			Help:      "Best-window extraction attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.UpstreamRequests, m.CacheLookups, m.Extractions)
	return m
}

func (m *Metrics) CountUpstreamRequest(api, outcome string) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(api, outcome).Inc()
}

func (m *Metrics) CountCacheLookup(cache, result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(cache, result).Inc()
}

func (m *Metrics) CountExtraction(outcome string) {
	if m == nil {
		return
	}
	m.Extractions.WithLabelValues(outcome).Inc()
}
