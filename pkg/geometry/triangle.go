package geometry

import (
	"github.com/df07/go-vcm/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	MaterialID int       // Index into the scene material list
	normal     core.Vec3 // Cached face normal, follows the vertex winding
}

// NewTriangle creates a new triangle from three vertices.
// The vertices must not be collinear.
func NewTriangle(v0, v1, v2 core.Vec3, materialID int) *Triangle {
	return &Triangle{
		V0:         v0,
		V1:         v1,
		V2:         v2,
		MaterialID: materialID,
		normal:     v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
	}
}

// Intersect tests the ray against the triangle edges using the signs of three
// scalar triple products, then solves the plane equation for the distance
func (t *Triangle) Intersect(ray core.Ray, tMax float64) (core.Intersection, bool) {
	ao := t.V0.Subtract(ray.Origin)
	bo := t.V1.Subtract(ray.Origin)
	co := t.V2.Subtract(ray.Origin)

	v0d := co.Cross(bo).Dot(ray.Direction)
	v1d := bo.Cross(ao).Dot(ray.Direction)
	v2d := ao.Cross(co).Dot(ray.Direction)

	allNegative := v0d < 0 && v1d < 0 && v2d < 0
	allPositive := v0d >= 0 && v1d >= 0 && v2d >= 0
	if !allNegative && !allPositive {
		return core.Intersection{}, false
	}

	// A ray parallel to the plane gives ±Inf or NaN and fails the range test
	distance := t.normal.Dot(ao) / t.normal.Dot(ray.Direction)
	if !(distance > ray.TMin && distance < tMax) {
		return core.Intersection{}, false
	}

	return core.Intersection{
		Dist:       distance,
		MaterialID: t.MaterialID,
		LightID:    core.NoID,
		Normal:     t.normal,
	}, true
}

// Occluded reports whether the ray hits the triangle within range
func (t *Triangle) Occluded(ray core.Ray, tMax float64) bool {
	_, hit := t.Intersect(ray, tMax)
	return hit
}

// GrowBounds extends bounds by the three vertices
func (t *Triangle) GrowBounds(bounds core.AABB) core.AABB {
	return bounds.Grow(t.V0).Grow(t.V1).Grow(t.V2)
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
