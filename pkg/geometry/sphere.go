package geometry

import (
	"math"

	"github.com/df07/go-vcm/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	MaterialID int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialID int) *Sphere {
	return &Sphere{
		Center:     center,
		Radius:     radius,
		MaterialID: materialID,
	}
}

// Intersect solves the ray-sphere quadratic and returns the nearest root in
// (ray.TMin, tMax)
func (s *Sphere) Intersect(ray core.Ray, tMax float64) (core.Intersection, bool) {
	// Ray origin relative to the sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}

	// Stable form: q has the sign of -b so no cancellation occurs
	sqrtD := math.Sqrt(discriminant)
	var q float64
	if b < 0 {
		q = (-b + sqrtD) / 2.0
	} else {
		q = (-b - sqrtD) / 2.0
	}

	t0 := q / a
	t1 := c / q
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	var root float64
	switch {
	case t0 > ray.TMin && t0 < tMax:
		root = t0
	case t1 > ray.TMin && t1 < tMax:
		root = t1
	default:
		return core.Intersection{}, false
	}

	return core.Intersection{
		Dist:       root,
		MaterialID: s.MaterialID,
		LightID:    core.NoID,
		Normal:     oc.Add(ray.Direction.Multiply(root)).Normalize(),
	}, true
}

// Occluded reports whether the ray hits the sphere within range
func (s *Sphere) Occluded(ray core.Ray, tMax float64) bool {
	_, hit := s.Intersect(ray, tMax)
	return hit
}

// GrowBounds extends bounds by the eight corners of the box enclosing the sphere
func (s *Sphere) GrowBounds(bounds core.AABB) core.AABB {
	for i := 0; i < 8; i++ {
		half := core.NewVec3Splat(s.Radius)
		if i&1 != 0 {
			half.X = -half.X
		}
		if i&2 != 0 {
			half.Y = -half.Y
		}
		if i&4 != 0 {
			half.Z = -half.Z
		}
		bounds = bounds.Grow(s.Center.Add(half))
	}
	return bounds
}
