package renderer

import (
	"fmt"
	"runtime"
	"time"
)

// RunLimit is the stopping condition of a render: a fixed number of
// iterations or a wall-clock budget. Exactly one must be set.
type RunLimit struct {
	Iterations int
	Duration   time.Duration
}

// IsTimed reports whether the limit is a time budget
func (l RunLimit) IsTimed() bool {
	return l.Duration > 0
}

func (l RunLimit) String() string {
	if l.IsTimed() {
		return fmt.Sprintf("%s render time", l.Duration)
	}
	return fmt.Sprintf("%d iteration(s)", l.Iterations)
}

// Config contains the settings of a parallel render
type Config struct {
	NumWorkers    int    // Number of parallel workers (0 = use CPU count)
	BaseSeed      uint64 // Worker i is seeded with BaseSeed + i, which must never be 0
	MinPathLength int
	MaxPathLength int
	Limit         RunLimit
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers:    0,
		BaseSeed:      1234,
		MinPathLength: 0,
		MaxPathLength: 10,
		Limit:         RunLimit{Iterations: 1},
	}
}

// workerCount resolves NumWorkers, using the CPU count when it is 0
func (c Config) workerCount() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// Validate checks the configuration for values no render can run with
func (c Config) Validate() error {
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.NumWorkers)
	}
	if c.MinPathLength < 0 || c.MaxPathLength < 0 {
		return fmt.Errorf("%w: negative path length bound", ErrInvalidConfig)
	}
	if c.MaxPathLength > 0 && c.MinPathLength > c.MaxPathLength {
		return fmt.Errorf("%w: min path length %d exceeds max %d", ErrInvalidConfig, c.MinPathLength, c.MaxPathLength)
	}

	// An all-zero xorshift state only produces zeros
	last := c.BaseSeed + uint64(c.workerCount()-1)
	if c.BaseSeed == 0 || last < c.BaseSeed {
		return fmt.Errorf("%w: worker seeds from %d wrap to 0", ErrInvalidConfig, c.BaseSeed)
	}

	l := c.Limit
	if l.Iterations < 0 || l.Duration < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidRunLimit)
	}
	if (l.Iterations > 0) == (l.Duration > 0) {
		return ErrInvalidRunLimit
	}
	return nil
}
