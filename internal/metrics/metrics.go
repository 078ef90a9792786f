// Package metrics exposes decimal cache counters as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"

	"github.com/inventar/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const subsystem = "decimal_cache"

// CacheCollector implements prometheus.Collector over the stats of a decimal cache.
// Values are read on every scrape, so the cache itself carries no Prometheus
// dependency.
type CacheCollector struct {
	cache *decimal.Cache

	entries *prometheus.Desc
	hits    *prometheus.Desc
	misses  *prometheus.Desc
}

var _ prometheus.Collector = (*CacheCollector)(nil)

// NewCacheCollector returns a collector for cache. Metric names are prefixed with namespace.
func NewCacheCollector(namespace string, cache *decimal.Cache) *CacheCollector {
	return &CacheCollector{
		cache: cache,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "entries"),
			"Number of interned decimals.",
			nil, nil,
		),
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "hits_total"),
			"Number of lookups that returned an existing decimal.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "misses_total"),
			"Number of lookups that created a decimal.",
			nil, nil,
		),
	}
}

func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.hits
	ch <- c.misses
}

func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.cache.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
}

// NewRegistry returns a registry holding a collector for cache.
func NewRegistry(namespace string, cache *decimal.Cache) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCacheCollector(namespace, cache)); err != nil {
		return nil, fmt.Errorf("could not register cache collector: %w", err)
	}

	return reg, nil
}

// WriteText gathers g and writes the result to w in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("could not write metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
