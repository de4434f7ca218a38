package core

// MaxDistance is the "nothing hit yet" sentinel distance for intersection queries
const MaxDistance = 1e36

// NoID marks a missing material or light in an Intersection
const NoID = -1

// RayEpsilon offsets secondary ray origins away from the surface they leave
const RayEpsilon = 1e-3

// Ray represents a ray with an origin, a normalized direction and the minimum
// distance at which a hit is accepted
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
}

// NewRay creates a new ray with TMin = 0
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Intersection describes the nearest surface hit by a ray
type Intersection struct {
	Dist       float64 // Distance along the ray
	MaterialID int     // Material of the hit surface, NoID if unknown
	LightID    int     // Light the surface emits as, NoID if none
	Normal     Vec3    // Geometric normal at the hit point (not face-forwarded)
}

// NewIntersection returns an intersection initialized to "no hit"
func NewIntersection() Intersection {
	return Intersection{
		Dist:       MaxDistance,
		MaterialID: NoID,
		LightID:    NoID,
	}
}

// IsLight reports whether the hit surface is an emitter
func (i Intersection) IsLight() bool {
	return i.LightID >= 0
}
