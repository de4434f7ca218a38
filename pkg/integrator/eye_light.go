package integrator

import (
	"github.com/df07/go-vcm/pkg/core"
	"github.com/df07/go-vcm/pkg/renderer"
	"github.com/df07/go-vcm/pkg/scene"
)

// EyeLightRenderer shades each primary hit by the cosine between the surface normal
// and the viewing direction, as if a light sat at the eye. Back faces are
// drawn in red. It is a debugging view, not a physical estimator.
type EyeLightRenderer struct {
	base    *renderer.Base
	sampler core.Sampler
}

var _ renderer.Renderer = (*EyeLightRenderer)(nil)

// NewEyeLight creates an eye light renderer seeded with (0, seed)
func NewEyeLight(sc *scene.Scene, seed uint64) *EyeLightRenderer {
	return NewEyeLightWithSampler(sc, core.NewSeededRng(0, seed))
}

// NewEyeLightWithSampler creates an eye light renderer drawing pixel offsets from sampler
func NewEyeLightWithSampler(sc *scene.Scene, sampler core.Sampler) *EyeLightRenderer {
	return &EyeLightRenderer{
		base:    renderer.NewBase(sc),
		sampler: sampler,
	}
}

func (e *EyeLightRenderer) Base() *renderer.Base {
	return e.base
}

// RunIteration traces one primary ray per pixel. Iteration 0 samples pixel
// centers; later iterations jitter within the pixel.
func (e *EyeLightRenderer) RunIteration(iteration int) {
	sc := e.base.Scene
	camera := sc.Camera
	resX := camera.Width()
	resY := camera.Height()

	for pixID := 0; pixID < resX*resY; pixID++ {
		x := pixID % resX
		y := pixID / resX

		offset := core.NewVec2Splat(0.5)
		if iteration > 0 {
			offset = e.sampler.Get2D()
		}
		sample := core.NewVec2(float64(x), float64(y)).Add(offset)

		ray := camera.GenerateRay(sample)
		hit, ok := sc.Intersect(ray)
		if !ok {
			continue
		}

		dotLN := hit.Normal.Dot(ray.Direction.Negate())
		if dotLN > 0 {
			e.base.Framebuffer.AddColor(sample, core.NewVec3Splat(dotLN))
		} else {
			e.base.Framebuffer.AddColor(sample, core.NewVec3(-dotLN, 0, 0))
		}
	}

	e.base.Iterations++
}
