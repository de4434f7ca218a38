package renderer

import (
	"github.com/df07/go-vcm/pkg/scene"
)

// Renderer is one rendering algorithm instance owned by a single worker
type Renderer interface {
	// Base exposes the state shared by all algorithms
	Base() *Base

	// RunIteration performs one full-image sampling pass. The iteration index
	// only steers sampling; every call adds exactly one to Base().Iterations.
	RunIteration(iteration int)
}

// Factory creates a renderer for a scene, seeded for one worker
type Factory func(sc *scene.Scene, seed uint64) Renderer

// Base holds the per-worker state of a renderer
type Base struct {
	MaxPathLength int
	MinPathLength int

	Iterations  int
	Framebuffer *Framebuffer
	Scene       *scene.Scene // Shared and read only
}

// NewBase returns the state for a renderer over sc, with an empty framebuffer
// sized to the scene camera
func NewBase(sc *scene.Scene) *Base {
	return &Base{
		MaxPathLength: 0,
		MinPathLength: 2,
		Framebuffer:   NewFramebuffer(sc.Camera.Resolution),
		Scene:         sc,
	}
}

// GetFramebuffer returns a copy of the accumulated framebuffer divided by the
// number of iterations
func (b *Base) GetFramebuffer() *Framebuffer {
	fb := b.Framebuffer.Clone()
	if b.Iterations > 0 {
		fb.Scale(1.0 / float64(b.Iterations))
	}
	return fb
}

// WasUsed reports whether the renderer completed at least one iteration
func (b *Base) WasUsed() bool {
	return b.Iterations > 0
}
