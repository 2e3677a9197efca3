// Package pipeline runs a summary: load samples, aggregate, write the report.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edgecomet/jtl-summary/internal/common/configtypes"
	"github.com/edgecomet/jtl-summary/internal/jtl"
	"github.com/edgecomet/jtl-summary/internal/metrics"
	"github.com/edgecomet/jtl-summary/internal/summary"
)

// Result describes a finished run
type Result struct {
	RunID       string
	Samples     int
	Rows        []summary.EndpointSummary
	Fingerprint uint64
	Duration    time.Duration
}

type Pipeline struct {
	config  *configtypes.SummaryConfig
	logger  *zap.Logger
	metrics *metrics.MetricsCollector
	stdout  io.Writer
}

// New creates a pipeline. A nil config means defaults.
func New(config *configtypes.SummaryConfig, logger *zap.Logger) *Pipeline {
	if config == nil {
		config = configtypes.Default()
	}
	return &Pipeline{
		config:  config,
		logger:  logger,
		metrics: metrics.NewMetricsCollector(config.Metrics.Namespace, logger),
		stdout:  os.Stdout,
	}
}

// SetOutput redirects the console table
func (p *Pipeline) SetOutput(w io.Writer) {
	p.stdout = w
}

// Metrics returns the collector used by the pipeline
func (p *Pipeline) Metrics() *metrics.MetricsCollector {
	return p.metrics
}

// Run summarizes inputPath into outputPath. Any error is terminal and no
// report is written when loading fails.
func (p *Pipeline) Run(inputPath, outputPath string) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := p.logger.With(zap.String("run_id", runID))

	logger.Info("Loading samples",
		zap.String("input", inputPath),
		zap.String("compression", jtl.DetectAlgorithmFromPath(inputPath)))

	samples, err := jtl.Load(inputPath, jtl.LoadOptions{Delimiter: p.config.Input.Delimiter})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", inputPath, err)
	}

	logger.Info("Samples loaded", zap.Int("samples", len(samples)))
	p.metrics.RecordSamples(samples)

	agg := summary.NewAggregator()
	for _, sample := range samples {
		label := jtl.Normalize(sample.Label)
		before := agg.Len()
		agg.Add(label, sample)
		if agg.Len() > before {
			logger.Debug("New endpoint",
				zap.String("label", label),
				zap.String("raw_label", sample.Label),
				zap.Int("line", sample.Line))
		}
	}
	rows := agg.Summaries()
	p.metrics.RecordEndpoints(len(rows))

	logger.Info("Samples aggregated", zap.Int("endpoints", len(rows)))

	fingerprint, err := summary.WriteFile(outputPath, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", outputPath, err)
	}

	logger.Info("Summary report saved",
		zap.String("output", outputPath),
		zap.String("report_hash", fmt.Sprintf("%016x", fingerprint)))

	if p.config.Report.ShouldPrintTable() {
		if err := summary.PrintTable(p.stdout, rows); err != nil {
			logger.Warn("Failed to print summary table", zap.Error(err))
		}
	}

	duration := time.Since(start)
	p.metrics.RecordRun(duration, time.Now())

	if p.config.Metrics.Enabled {
		// The report is already written, a metrics failure does not fail the run
		if err := p.metrics.Flush(p.config.Metrics.Textfile); err != nil {
			logger.Warn("Failed to write metrics", zap.Error(err))
		}
	}

	return &Result{
		RunID:       runID,
		Samples:     len(samples),
		Rows:        rows,
		Fingerprint: fingerprint,
		Duration:    duration,
	}, nil
}
