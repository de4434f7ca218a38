package renderer

import (
	"math"
	"testing"
	"time"
)

func TestRenderResult_IterationsPerSecond(t *testing.T) {
	tests := []struct {
		name     string
		result   RenderResult
		expected float64
	}{
		{"two seconds", RenderResult{Iterations: 10, Elapsed: 2 * time.Second}, 5},
		{"sub second", RenderResult{Iterations: 3, Elapsed: 500 * time.Millisecond}, 6},
		{"no elapsed time", RenderResult{Iterations: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IterationsPerSecond(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
