package core

import "math"

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// ConstantSampler always returns the same sample, useful for deterministic tests
type ConstantSampler struct {
	Value float64
}

func (c ConstantSampler) Get1D() float64 { return c.Value }
func (c ConstantSampler) Get2D() Vec2    { return NewVec2Splat(c.Value) }
func (c ConstantSampler) Get3D() Vec3    { return NewVec3Splat(c.Value) }

// CosHemispherePdfW returns the solid angle density of cosine-weighted
// hemisphere sampling around normal for the given direction
func CosHemispherePdfW(normal, direction Vec3) float64 {
	return math.Max(0, normal.Dot(direction)) / math.Pi
}

// UniformSpherePdfW returns the solid angle density of uniform sphere sampling
func UniformSpherePdfW() float64 {
	return 1.0 / (4.0 * math.Pi)
}

// ConcentricDiscPdfA returns the area density of concentric sampling of the unit disc
func ConcentricDiscPdfA() float64 {
	return 1.0 / math.Pi
}
