// Package summary aggregates samples into per-endpoint statistics and renders them.
package summary

import (
	"sort"

	"github.com/edgecomet/jtl-summary/internal/jtl"
)

// EndpointSummary is one report row
type EndpointSummary struct {
	Label        string
	AvgSeconds   float64
	MinSeconds   float64
	MaxSeconds   float64
	ErrorPercent float64
	TotalSamples int
}

type accumulator struct {
	firstSeen int
	sum       float64
	min       float64
	max       float64
	count     int
	errors    int
}

func (a *accumulator) add(elapsed float64, success bool) {
	if a.count == 0 || elapsed < a.min {
		a.min = elapsed
	}
	if a.count == 0 || elapsed > a.max {
		a.max = elapsed
	}
	a.sum += elapsed
	a.count++
	if !success {
		a.errors++
	}
}

// Aggregator groups samples by normalized label in a single pass
type Aggregator struct {
	groups map[string]*accumulator
	seen   int
}

func NewAggregator() *Aggregator {
	return &Aggregator{groups: make(map[string]*accumulator)}
}

// Add records a sample under an already normalized label
func (a *Aggregator) Add(label string, sample jtl.Sample) {
	acc, exists := a.groups[label]
	if !exists {
		acc = &accumulator{firstSeen: a.seen}
		a.groups[label] = acc
	}
	a.seen++
	acc.add(sample.Elapsed, sample.Success)
}

// Len returns the number of distinct labels seen so far
func (a *Aggregator) Len() int {
	return len(a.groups)
}

// Summaries returns one row per label, ordered by the label's first appearance.
// Times are converted from milliseconds to seconds.
func (a *Aggregator) Summaries() []EndpointSummary {
	labels := make([]string, 0, len(a.groups))
	for label := range a.groups {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return a.groups[labels[i]].firstSeen < a.groups[labels[j]].firstSeen
	})

	rows := make([]EndpointSummary, 0, len(labels))
	for _, label := range labels {
		acc := a.groups[label]
		count := float64(acc.count)
		rows = append(rows, EndpointSummary{
			Label:        label,
			AvgSeconds:   acc.sum / count / 1000,
			MinSeconds:   acc.min / 1000,
			MaxSeconds:   acc.max / 1000,
			ErrorPercent: float64(acc.errors) / count * 100,
			TotalSamples: acc.count,
		})
	}
	return rows
}

// Aggregate normalizes every sample label and summarizes the groups
func Aggregate(samples []jtl.Sample) []EndpointSummary {
	agg := NewAggregator()
	for _, sample := range samples {
		agg.Add(jtl.Normalize(sample.Label), sample)
	}
	return agg.Summaries()
}
