// Package metrics exposes Prometheus instrumentation for the news
// aggregation and subscription paths.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector bundles the application metrics registered on a single
// Prometheus registry.
type Collector struct {
	Registry *prometheus.Registry

	NewsFetchTotal        *prometheus.CounterVec
	NewsFetchDuration     prometheus.Histogram
	NewsCacheEvents       *prometheus.CounterVec
	SubscriptionMutations *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		Registry: registry,
		NewsFetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "news_fetch_total",
			Help: "Per-ticker news fetches by result.",
		}, []string{"result"}),
		NewsFetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "news_fetch_duration_seconds",
			Help:    "Latency of aggregated news fetches.",
			Buckets: prometheus.DefBuckets,
		}),
		NewsCacheEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "news_cache_events_total",
			Help: "Aggregate news cache hits and misses.",
		}, []string{"event"}),
		SubscriptionMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "subscription_mutations_total",
			Help: "Subscription store mutations by operation and result.",
		}, []string{"operation", "result"}),
	}
}

// RecordNewsFetch counts one per-ticker fetch and observes its latency.
func (c *Collector) RecordNewsFetch(result string, d time.Duration) {
	c.NewsFetchTotal.WithLabelValues(result).Inc()
	c.NewsFetchDuration.Observe(d.Seconds())
}


func (c *Collector) RecordCacheHit()  { c.NewsCacheEvents.WithLabelValues("hit").Inc() }
func (c *Collector) RecordCacheMiss() { c.NewsCacheEvents.WithLabelValues("miss").Inc() }

func (c *Collector) RecordMutation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.SubscriptionMutations.WithLabelValues(operation, result).Inc()
}
