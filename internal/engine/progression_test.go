package engine

import (
	"testing"

	"github.com/vovakirdan/dinorun/internal/config"
)

func TestInitialSpeed(t *testing.T) {
	scoring := config.Default().Scoring

	tests := []struct {
		base     int
		expected int
	}{
		{800, 8},
		{1000, 10},
		{1200, 12},
		{5000, 25},
		{10, 1},
	}

	for _, tc := range tests {
		if got := InitialSpeed(scoring, tc.base); got != tc.expected {
			t.Errorf("InitialSpeed(%d) = %d, expected %d", tc.base, got, tc.expected)
		}
	}
}

func TestNextSpeed(t *testing.T) {
	scoring := config.Default().Scoring

	tests := []struct {
		name               string
		speed, old, scored int
		expected           int
	}{
		{"below threshold", 10, 480, 490, 10},
		{"crosses 500", 10, 490, 500, 11},
		{"crosses 1000", 11, 990, 1010, 12},
		{"crosses two thresholds", 10, 495, 1005, 12},
		{"no score change", 10, 500, 500, 10},
		{"capped", 25, 990, 1000, 25},
		{"cap reached by step", 24, 1490, 2000, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextSpeed(scoring, tc.speed, tc.old, tc.scored); got != tc.expected {
				t.Errorf("NextSpeed(%d, %d, %d) = %d, expected %d", tc.speed, tc.old, tc.scored, got, tc.expected)
			}
		})
	}
}
