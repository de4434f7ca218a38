package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewEmptyAABB returns an inverted box that any Grow call replaces
func NewEmptyAABB() AABB {
	return AABB{
		Min: NewVec3Splat(MaxDistance),
		Max: NewVec3Splat(-MaxDistance),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	aabb := NewEmptyAABB()
	for _, point := range points {
		aabb = aabb.Grow(point)
	}
	return aabb
}

// Grow returns the AABB extended to contain point
func (aabb AABB) Grow(point Vec3) AABB {
	return AABB{
		Min: aabb.Min.Min(point),
		Max: aabb.Max.Max(point),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: aabb.Min.Min(other.Min),
		Max: aabb.Max.Max(other.Max),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// BoundingRadius returns the radius of the sphere centered at Center that
// passes through the box corners
func (aabb AABB) BoundingRadius() float64 {
	return math.Sqrt(aabb.Size().LengthSquared()) * 0.5
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
