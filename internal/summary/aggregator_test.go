package summary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgecomet/jtl-summary/internal/jtl"
)

func sample(label string, elapsed float64, success bool) jtl.Sample {
	return jtl.Sample{Label: label, Elapsed: elapsed, ResponseCode: "200", Success: success}
}

func TestAggregate_EndToEndScenario(t *testing.T) {
	rows := Aggregate([]jtl.Sample{
		sample("login-1", 500, true),
		sample("login-2", 700, false),
		sample("home", 300, true),
	})

	require.Len(t, rows, 2)

	assert.Equal(t, "login", rows[0].Label)
	assert.InDelta(t, 0.6, rows[0].AvgSeconds, 1e-12)
	assert.Equal(t, 0.5, rows[0].MinSeconds)
	assert.Equal(t, 0.7, rows[0].MaxSeconds)
	assert.Equal(t, 50.0, rows[0].ErrorPercent)
	assert.Equal(t, 2, rows[0].TotalSamples)

	assert.Equal(t, EndpointSummary{
		Label:        "home",
		AvgSeconds:   0.3,
		MinSeconds:   0.3,
		MaxSeconds:   0.3,
		ErrorPercent: 0,
		TotalSamples: 1,
	}, rows[1])
}

func TestAggregate_AllSuccessfulGroup(t *testing.T) {
	rows := Aggregate([]jtl.Sample{
		sample("api", 1000, true),
		sample("api", 2000, true),
		sample("api", 3000, true),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, EndpointSummary{
		Label:        "api",
		AvgSeconds:   2.0,
		MinSeconds:   1.0,
		MaxSeconds:   3.0,
		ErrorPercent: 0.0,
		TotalSamples: 3,
	}, rows[0])
}

func TestAggregate_HalfFailed(t *testing.T) {
	rows := Aggregate([]jtl.Sample{
		sample("pay", 10, true),
		sample("pay", 20, false),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, 50.0, rows[0].ErrorPercent)
}

func TestAggregate_AllFailed(t *testing.T) {
	rows := Aggregate([]jtl.Sample{
		sample("pay-1", 10, false),
		sample("pay-2", 20, false),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, 100.0, rows[0].ErrorPercent)
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	// Order must follow first appearance, not label or value ordering
	rows := Aggregate([]jtl.Sample{
		sample("zeta-1", 1, true),
		sample("alpha", 9000, true),
		sample("zeta-2", 5, true),
		sample("mid-7", 300, false),
		sample("alpha", 1, true),
		sample("beta", 2, true),
	})

	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid", "beta"}, labels)
}

func TestAggregate_RowCountMatchesDistinctLabels(t *testing.T) {
	var samples []jtl.Sample
	distinct := make(map[string]bool)
	for i := 0; i < 200; i++ {
		label := fmt.Sprintf("endpoint%d-%d", i%17, i)
		samples = append(samples, sample(label, float64(i), i%5 != 0))
		distinct[jtl.Normalize(label)] = true
	}

	rows := Aggregate(samples)
	assert.Len(t, rows, len(distinct))

	total := 0
	for _, row := range rows {
		total += row.TotalSamples
	}
	assert.Equal(t, len(samples), total)
}

func TestAggregate_NormalizesOnlyTrailingSuffix(t *testing.T) {
	rows := Aggregate([]jtl.Sample{
		sample("order-1-2", 100, true),
		sample("order-1-3", 300, true),
		sample("order-2", 200, true),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "order-1", rows[0].Label)
	assert.Equal(t, 2, rows[0].TotalSamples)
	assert.Equal(t, "order", rows[1].Label)
}

func TestAggregate_Empty(t *testing.T) {
	rows := Aggregate(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestAggregator_ZeroElapsedMinimum(t *testing.T) {
	agg := NewAggregator()
	agg.Add("home", sample("home", 5, true))
	agg.Add("home", sample("home", 0, true))
	agg.Add("home", sample("home", 8, true))

	rows := agg.Summaries()
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].MinSeconds)
	assert.Equal(t, 0.008, rows[0].MaxSeconds)
	assert.Equal(t, 1, agg.Len())
}
