package service

import (
	"time"

	"hotelmesh/domain"
	"hotelmesh/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a mesh service. A nil *Metrics is valid and
// records nothing, so components can be built without observability in tests.
type Metrics struct {
	DownstreamCalls     *prometheus.CounterVec
	DownstreamLatency   *prometheus.HistogramVec
	BookingOutcomes     *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		DownstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelmesh_downstream_calls_total",
			Help: "Downstream calls by method and outcome code",
		}, []string{"method", "outcome"}),
		DownstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hotelmesh_downstream_latency_seconds",
			Help:    "Latency of downstream calls including pool acquisition",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"method"}),
		BookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelmesh_booking_outcomes_total",
			Help: "Reservation attempts by business outcome",
		}, []string{"outcome"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		Registry: reg,
	}
	reg.MustRegister(
		m.DownstreamCalls,
		m.DownstreamLatency,
		m.BookingOutcomes,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)
	return m
}

// ObserveDownstream records one downstream call; code is "" on success.
func (m *Metrics) ObserveDownstream(method string, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if code == "" {
		code = "ok"
	}
	m.DownstreamCalls.WithLabelValues(method, code).Inc()
	m.DownstreamLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveBooking records one reservation outcome.
func (m *Metrics) ObserveBooking(outcome domain.BookingOutcome) {
	if m == nil {
		return
	}
	m.BookingOutcomes.WithLabelValues(outcome.String()).Inc()
}

// ObserveHTTP records one frontend request.
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

// RegisterPools exports slot usage of every pool in set as gauges labelled by downstream.
func (m *Metrics) RegisterPools(set *PoolSet) {
	if m == nil || set == nil {
		return
	}
	m.Registry.MustRegister(&poolCollector{pools: set.All()})
}

var (
	poolSlotsDesc = prometheus.NewDesc(
		"hotelmesh_pool_slots",
		"Connection pool slots by downstream and state",
		[]string{"downstream", "state"}, nil,
	)
	poolSlotErrorsDesc = prometheus.NewDesc(
		"hotelmesh_pool_slot_errors",
		"Sum of consecutive error counters over the slots of a pool",
		[]string{"downstream"}, nil,
	)
)

// poolCollector reads pool stats at scrape time.
type poolCollector struct {
	pools map[domain.ServiceName]interfaces.ConnectionPool
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- poolSlotsDesc
	ch <- poolSlotErrorsDesc
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	for name, p := range c.pools {
		var inUse, free, errs float64
		for _, s := range p.Stats() {
			if s.InUse {
				inUse++
			} else {
				free++
			}
			errs += float64(s.Errors)
		}
		ch <- prometheus.MustNewConstMetric(poolSlotsDesc, prometheus.GaugeValue, inUse, string(name), "in_use")
		ch <- prometheus.MustNewConstMetric(poolSlotsDesc, prometheus.GaugeValue, free, string(name), "free")
		ch <- prometheus.MustNewConstMetric(poolSlotErrorsDesc, prometheus.GaugeValue, errs, string(name))
	}
}
