package summary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Runtime operands so the arithmetic is done in float64, not exact constants
var one, three, tenth, fifth = 1.0, 3.0, 0.1, 0.2

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{2, "2.0"},
		{0.6, "0.6"},
		{0.5, "0.5"},
		{50, "50.0"},
		{100, "100.0"},
		{one / three * 100, "33.33333333333333"},
		{tenth + fifth, "0.30000000000000004"},
		{123456.789, "123456.789"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{0.000123, "0.000123"},
		{-2.5, "-2.5"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}
