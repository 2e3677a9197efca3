package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/edgecomet/jtl-summary/internal/common/configtypes"
)

// Sample outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type PrometheusMetrics struct {
	registry *prometheus.Registry
	logger   *zap.Logger

	samplesTotal     *prometheus.CounterVec
	sampleElapsed    prometheus.Histogram
	endpoints        prometheus.Gauge
	pipelineDuration prometheus.Gauge
	lastRunTimestamp prometheus.Gauge
}

func NewPrometheusMetrics(namespace string, logger *zap.Logger) *PrometheusMetrics {
	return NewPrometheusMetricsWithRegistry(namespace, prometheus.NewRegistry(), logger)
}

// NewPrometheusMetricsWithRegistry registers all collectors on registry
func NewPrometheusMetricsWithRegistry(namespace string, registry *prometheus.Registry, logger *zap.Logger) *PrometheusMetrics {
	if namespace == "" {
		namespace = configtypes.DefaultMetricsNamespace
	}

	pm := &PrometheusMetrics{
		registry: registry,
		logger:   logger,
	}

	pm.samplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Total number of samples read from the result log",
		},
		[]string{"response_code", "outcome"},
	)

	pm.sampleElapsed = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_elapsed_seconds",
			Help:      "Elapsed time of samples read from the result log",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	pm.endpoints = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "endpoints",
			Help:      "Number of distinct normalized endpoints in the last report",
		},
	)

	pm.pipelineDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Wall time of the last summary run",
		},
	)

	pm.lastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last summary run finished",
		},
	)

	registry.MustRegister(pm.samplesTotal)
	registry.MustRegister(pm.sampleElapsed)
	registry.MustRegister(pm.endpoints)
	registry.MustRegister(pm.pipelineDuration)
	registry.MustRegister(pm.lastRunTimestamp)

	logger.Debug("Prometheus metrics initialized", zap.String("namespace", namespace))

	return pm
}

func (pm *PrometheusMetrics) RecordSample(responseCode, outcome string, elapsed time.Duration) {
	pm.samplesTotal.WithLabelValues(responseCode, outcome).Inc()
	pm.sampleElapsed.Observe(elapsed.Seconds())
}

func (pm *PrometheusMetrics) SetEndpoints(count int) {
	pm.endpoints.Set(float64(count))
}

func (pm *PrometheusMetrics) RecordRun(duration time.Duration, finished time.Time) {
	pm.pipelineDuration.Set(duration.Seconds())
	pm.lastRunTimestamp.Set(float64(finished.Unix()))
}

// WriteTextfile writes every metric in Prometheus text format to path
func (pm *PrometheusMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, pm.registry)
}

// Gatherer exposes the underlying registry
func (pm *PrometheusMetrics) Gatherer() prometheus.Gatherer {
	return pm.registry
}
