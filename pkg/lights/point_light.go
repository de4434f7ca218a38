package lights

import "github.com/df07/go-vcm/pkg/core"

// PointLight emits uniformly in all directions from a single position
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// GetRadiance always returns zero: a point cannot be hit by a ray
func (pl *PointLight) GetRadiance(sceneSphere SceneSphere, rayDirection, hitPoint core.Vec3) RadianceResult {
	return RadianceResult{}
}

func (pl *PointLight) IsFinite() bool { return true }
func (pl *PointLight) IsDelta() bool  { return true }
