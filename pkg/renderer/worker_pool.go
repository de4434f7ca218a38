package renderer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-vcm/pkg/log"
	"github.com/df07/go-vcm/pkg/scene"
)

// WorkerPool runs one renderer per worker and merges their framebuffers
type WorkerPool struct {
	scene   *scene.Scene
	config  Config
	workers []*Worker
	logger  log.Logger
}

// Worker owns a renderer; nothing else touches it while a render runs
type Worker struct {
	ID       int
	Seed     uint64
	renderer Renderer
	stats    WorkerStats
}

// NewWorkerPool creates the workers for a render. A nil logger uses the
// "renderer" module logger.
func NewWorkerPool(sc *scene.Scene, factory Factory, config Config, logger log.Logger) (*WorkerPool, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New("renderer")
	}

	numWorkers := config.workerCount()

	wp := &WorkerPool{
		scene:  sc,
		config: config,
		logger: logger,
	}

	for i := 0; i < numWorkers; i++ {
		seed := config.BaseSeed + uint64(i)
		r := factory(sc, seed)
		r.Base().MinPathLength = config.MinPathLength
		r.Base().MaxPathLength = config.MaxPathLength

		wp.workers = append(wp.workers, &Worker{
			ID:       i,
			Seed:     seed,
			renderer: r,
			stats:    WorkerStats{ID: i, Seed: seed},
		})
	}

	return wp, nil
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// Render runs all workers until the run limit is reached, then averages the
// normalized framebuffers of the workers that completed an iteration.
// Cancelling ctx stops workers after their current iteration and returns
// ErrInterrupted.
func (wp *WorkerPool) Render(ctx context.Context) (*RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	limit := wp.config.Limit
	wp.logger.Infof("rendering %q with %d workers, target %s", wp.scene.Name, len(wp.workers), limit)

	runCtx := ctx
	if limit.IsTimed() {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, limit.Duration)
		defer cancel()
	}

	start := time.Now()
	var next int64
	var g errgroup.Group

	for _, w := range wp.workers {
		g.Go(func() error {
			wp.logger.Debugf("worker %d started (seed %d)", w.ID, w.Seed)
			started := time.Now()

			if limit.IsTimed() {
				w.runTimed(runCtx, &next)
			} else {
				w.runIterations(runCtx, limit.Iterations, len(wp.workers))
			}

			w.stats.RenderTime = time.Since(started)
			w.stats.Iterations = w.renderer.Base().Iterations
			w.stats.Used = w.renderer.Base().WasUsed()
			wp.logger.Debugf("worker %d finished %d iteration(s) in %s", w.ID, w.stats.Iterations, w.stats.RenderTime)
			return nil
		})
	}

	// Workers never fail; Wait is the barrier before merging
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	result, err := wp.merge()
	if err != nil {
		return nil, err
	}
	result.Elapsed = time.Since(start)

	wp.logger.Infof("merged %d of %d workers, %d iteration(s) in %s",
		result.UsedWorkers, len(wp.workers), result.Iterations, result.Elapsed)
	return result, nil
}

// merge averages the normalized framebuffers of used workers
func (wp *WorkerPool) merge() (*RenderResult, error) {
	result := &RenderResult{}

	for _, w := range wp.workers {
		result.Workers = append(result.Workers, w.stats)
		result.Iterations += w.stats.Iterations

		if !w.stats.Used {
			continue
		}

		fb := w.renderer.Base().GetFramebuffer()
		if result.Framebuffer == nil {
			result.Framebuffer = fb
		} else if err := result.Framebuffer.Add(fb); err != nil {
			return nil, err
		}
		result.UsedWorkers++
	}

	if result.UsedWorkers == 0 {
		return nil, ErrNoWorkersUsed
	}

	result.Framebuffer.Scale(1.0 / float64(result.UsedWorkers))
	return result, nil
}

// runIterations renders the indices i, i+n, i+2n, ... below total
func (w *Worker) runIterations(ctx context.Context, total, n int) {
	for i := w.ID; i < total; i += n {
		if ctx.Err() != nil {
			return
		}
		w.renderer.RunIteration(i)
	}
}

// runTimed claims shared iteration indices until the deadline passes.
// An iteration that has started always completes.
func (w *Worker) runTimed(ctx context.Context, next *int64) {
	for ctx.Err() == nil {
		i := atomic.AddInt64(next, 1) - 1
		w.renderer.RunIteration(int(i))
	}
}
