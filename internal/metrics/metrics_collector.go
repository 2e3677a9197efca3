package metrics

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edgecomet/jtl-summary/internal/jtl"
)

// MetricsCollector centralizes metrics recording for a summary run
type MetricsCollector struct {
	prometheus *PrometheusMetrics
	logger     *zap.Logger
}

// NewMetricsCollector creates a new MetricsCollector instance
func NewMetricsCollector(namespace string, logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		prometheus: NewPrometheusMetrics(namespace, logger),
		logger:     logger,
	}
}

// RecordSamples counts samples by response code and outcome
func (mc *MetricsCollector) RecordSamples(samples []jtl.Sample) {
	for _, s := range samples {
		outcome := OutcomeSuccess
		if !s.Success {
			outcome = OutcomeError
		}
		elapsed := time.Duration(s.Elapsed * float64(time.Millisecond))
		mc.prometheus.RecordSample(s.ResponseCode, outcome, elapsed)
	}

	mc.logger.Debug("Recorded sample metrics", zap.Int("samples", len(samples)))
}

// RecordEndpoints records the number of report rows
func (mc *MetricsCollector) RecordEndpoints(count int) {
	mc.prometheus.SetEndpoints(count)
}

// RecordRun records wall time and completion time of a run
func (mc *MetricsCollector) RecordRun(duration time.Duration, finished time.Time) {
	mc.prometheus.RecordRun(duration, finished)

	mc.logger.Debug("Recorded run metric", zap.Duration("duration", duration))
}

// Flush writes collected metrics to a textfile
func (mc *MetricsCollector) Flush(path string) error {
	if err := mc.prometheus.WriteTextfile(path); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	mc.logger.Info("Metrics written", zap.String("path", path))
	return nil
}

// GetPrometheusMetrics returns the underlying PrometheusMetrics instance
func (mc *MetricsCollector) GetPrometheusMetrics() *PrometheusMetrics {
	return mc.prometheus
}
