package renderer

import "time"

// WorkerStats describes what one worker contributed to a render
type WorkerStats struct {
	ID         int
	Seed       uint64
	Iterations int
	Used       bool
	RenderTime time.Duration
}

// RenderResult is the outcome of a parallel render
type RenderResult struct {
	// Framebuffer is the average of the normalized framebuffers of used workers
	Framebuffer *Framebuffer

	// Iterations is the total over all workers
	Iterations  int
	UsedWorkers int
	Elapsed     time.Duration

	Workers []WorkerStats
}

// IterationsPerSecond returns the overall throughput of the render
func (r *RenderResult) IterationsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Iterations) / r.Elapsed.Seconds()
}
