// Package metrics exposes pool activity as Prometheus metrics.
//
// A Collector snapshots a pool's counters on every scrape, so
// registering one adds no overhead to the task path:
//
//	p := pool.New(pool.WithThreads(8))
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector(p, "ingest"))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/utkarsh5026/spindle/pool"
)

// Collector implements prometheus.Collector by reading a pool's Stats
// on every scrape and emitting them as constant metrics.
type Collector struct {
	pool *pool.Pool

	workers   *prometheus.Desc
	running   *prometheus.Desc
	pending   *prometheus.Desc
	active    *prometheus.Desc
	submitted *prometheus.Desc
	completed *prometheus.Desc
	cleared   *prometheus.Desc
}

// NewCollector returns a collector for p. The poolName value is
// attached to every series as the "pool" label so several pools can
// share one registry.
func NewCollector(p *pool.Pool, poolName string) *Collector {
	fqName := func(name string) string {
		return "spindle_pool_" + name
	}
	labels := prometheus.Labels{"pool": poolName}
	return &Collector{
		pool: p,
		workers: prometheus.NewDesc(
			fqName("workers"),
			"Number of worker goroutines the pool spawns when started.",
			nil, labels,
		),
		running: prometheus.NewDesc(
			fqName("running"),
			"Whether the pool is currently running (1) or stopped (0).",
			nil, labels,
		),
		pending: prometheus.NewDesc(
			fqName("tasks_pending"),
			"Number of tasks waiting in the queue.",
			nil, labels,
		),
		active: prometheus.NewDesc(
			fqName("tasks_running"),
			"Number of tasks currently executing.",
			nil, labels,
		),
		submitted: prometheus.NewDesc(
			fqName("tasks_submitted_total"),
			"Total number of tasks accepted by Submit.",
			nil, labels,
		),
		completed: prometheus.NewDesc(
			fqName("tasks_completed_total"),
			"Total number of tasks that finished executing.",
			nil, labels,
		),
		cleared: prometheus.NewDesc(
			fqName("tasks_cleared_total"),
			"Total number of pending tasks discarded by Clear.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workers
	ch <- c.running
	ch <- c.pending
	ch <- c.active
	ch <- c.submitted
	ch <- c.completed
	ch <- c.cleared
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stats()

	var runningVal float64
	if s.Status == pool.StatusRunning {
		runningVal = 1
	}

	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(s.Threads))
	ch <- prometheus.MustNewConstMetric(c.running, prometheus.GaugeValue, runningVal)
	ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue, float64(s.Pending))
	ch <- prometheus.MustNewConstMetric(c.active, prometheus.GaugeValue, float64(s.Running))
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(s.Completed))
	ch <- prometheus.MustNewConstMetric(c.cleared, prometheus.CounterValue, float64(s.Cleared))
}
