package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBipolar(t *testing.T) {
	tests := []struct {
		name     string
		native   float64
		expected float64
	}{
		{"most negative", -1.0, 0.0},
		{"neutral", 0.0, 0.5},
		{"most positive", 1.0, 1.0},
		{"mildly positive", 0.5, 0.75},
		{"mildly negative", -0.5, 0.25},
		{"clamped above", 1.4, 1.0},
		{"clamped below", -1.4, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FromBipolar(tt.native), 1e-9)
		})
	}
}

func TestFromDistribution(t *testing.T) {
	tests := []struct {
		name                        string
		negative, neutral, positive float64
		expected                    float64
	}{
		{"all positive", 0, 0, 1, 1.0},
		{"all negative", 1, 0, 0, 0.0},
		{"all neutral", 0, 1, 0, 0.5},
		{"mixed", 0.1, 0.2, 0.7, 0.8},
		{"unnormalized distribution", 0.2, 0.4, 1.4, 0.8},
		{"zero denominator defaults to neutral", 0, 0, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDistribution(tt.negative, tt.neutral, tt.positive)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
