package geometry

import "github.com/df07/go-vcm/pkg/core"

// Geometry is anything a ray can be intersected against.
//
// Queries are pure: they return the hit instead of mutating a shared record.
// Callers that test several primitives keep the running nearest distance and
// pass it back as tMax.
type Geometry interface {
	// Intersect returns the nearest hit with ray.TMin < dist < tMax
	Intersect(ray core.Ray, tMax float64) (core.Intersection, bool)

	// Occluded reports whether anything is hit with ray.TMin < dist < tMax
	Occluded(ray core.Ray, tMax float64) bool

	// GrowBounds returns bounds extended to contain the geometry
	GrowBounds(bounds core.AABB) core.AABB
}
