package utils

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

func TestTruncateDecimals(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		decimals int
		expected float64
	}{
		{name: "two decimals", val: 98.1234, decimals: 2, expected: 98.12},
		{name: "floors instead of rounding", val: 3.929, decimals: 2, expected: 3.92},
		{name: "exact value unchanged", val: 98.00, decimals: 2, expected: 98.00},
		{name: "zero decimals", val: 7.9, decimals: 0, expected: 7},
		{name: "zero value", val: 0, decimals: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, TruncateDecimals(tt.val, tt.decimals), tt.expected)
		})
	}
}

func TestTruncateDecimals_NeverExceedsInput(t *testing.T) {
	vals := []float64{0, 0.009, 1.23456, 4.0, 99.999, 12345.6789}
	for _, v := range vals {
		for d := 0; d <= 6; d++ {
			got := TruncateDecimals(v, d)
			assert.Assert(t, got <= v, "truncate(%v, %d) = %v exceeds input", v, d, got)

			scaled := got * math.Pow(10, float64(d))
			assert.Assert(t, math.Abs(scaled-math.Round(scaled)) < 1e-5,
				"truncate(%v, %d) = %v is not exact at %d decimals", v, d, got, d)
		}
	}
}

func TestRoundToStep(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		step     float64
		expected float64
	}{
		{name: "rounds down to step", qty: 1.23456, step: 0.01, expected: 1.23},
		{name: "below one step", qty: 0.001, step: 0.01, expected: 0},
		{name: "exact multiple", qty: 1.23, step: 0.01, expected: 1.23},
		{name: "whole unit step", qty: 7.9, step: 1, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundToStep(tt.qty, tt.step)
			assert.Assert(t, math.Abs(got-tt.expected) < 1e-12, "got %v, want %v", got, tt.expected)
		})
	}
}

func TestRoundToStep_Properties(t *testing.T) {
	qtys := []float64{0, 0.001, 0.999, 1.23456, 42.42, 1000.0001}
	steps := []float64{0.001, 0.01, 0.1, 0.5, 1}
	for _, q := range qtys {
		for _, s := range steps {
			got := RoundToStep(q, s)
			assert.Assert(t, got <= q, "roundToStep(%v, %v) = %v exceeds qty", q, s, got)

			mult := got / s
			assert.Assert(t, math.Abs(mult-math.Round(mult)) < 1e-9,
				"roundToStep(%v, %v) = %v is not a multiple of step", q, s, got)
		}
	}
}

func TestStepDecimals(t *testing.T) {
	tests := []struct {
		step     float64
		expected int
	}{
		{step: 0.001, expected: 3},
		{step: 0.01, expected: 2},
		{step: 0.1, expected: 1},
		{step: 1, expected: 0},
		{step: 10, expected: 0},
		{step: 0.00001, expected: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, StepDecimals(tt.step), tt.expected, "step %v", tt.step)
	}
}
