package geometry

import "github.com/df07/go-vcm/pkg/core"

// List is an aggregate that answers queries by testing every member in order.
// There is no acceleration structure; scenes using it are small.
type List struct {
	Geometry []Geometry
}

// NewList creates an aggregate over the given members
func NewList(members ...Geometry) *List {
	return &List{Geometry: members}
}

// Add appends members to the aggregate
func (l *List) Add(members ...Geometry) {
	l.Geometry = append(l.Geometry, members...)
}

// Len returns the number of members
func (l *List) Len() int {
	return len(l.Geometry)
}

// Intersect tests every member, narrowing tMax to the closest hit so far
func (l *List) Intersect(ray core.Ray, tMax float64) (core.Intersection, bool) {
	closest := core.NewIntersection()
	closest.Dist = tMax
	hitAnything := false

	for _, g := range l.Geometry {
		if hit, ok := g.Intersect(ray, closest.Dist); ok {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Occluded stops at the first member reporting a hit
func (l *List) Occluded(ray core.Ray, tMax float64) bool {
	for _, g := range l.Geometry {
		if g.Occluded(ray, tMax) {
			return true
		}
	}
	return false
}

// GrowBounds extends bounds by every member
func (l *List) GrowBounds(bounds core.AABB) core.AABB {
	for _, g := range l.Geometry {
		bounds = g.GrowBounds(bounds)
	}
	return bounds
}
