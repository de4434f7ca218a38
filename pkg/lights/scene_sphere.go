package lights

import "github.com/df07/go-vcm/pkg/core"

// SceneSphere bounds all scene geometry. Infinite lights use it to turn
// directional densities into densities over a disc the size of the scene.
type SceneSphere struct {
	Center       core.Vec3
	Radius       float64
	InvRadiusSqr float64
}

// NewSceneSphere returns the sphere circumscribing bounds.
// bounds must be valid and non-degenerate.
func NewSceneSphere(bounds core.AABB) SceneSphere {
	radius := bounds.BoundingRadius()
	return SceneSphere{
		Center:       bounds.Center(),
		Radius:       radius,
		InvRadiusSqr: 1.0 / (radius * radius),
	}
}

// Contains reports whether p lies inside the sphere
func (s SceneSphere) Contains(p core.Vec3) bool {
	return p.Subtract(s.Center).Length() <= s.Radius*(1+1e-9)
}

