package lights

import "github.com/df07/go-vcm/pkg/core"

// DirectionalLight illuminates the scene with parallel rays, like a distant sun
type DirectionalLight struct {
	Frame     core.Frame // Z axis is the direction light travels
	Intensity core.Vec3
}

// NewDirectionalLight creates a light travelling along direction.
// direction must be non-zero.
func NewDirectionalLight(direction, intensity core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Frame:     core.NewFrameFromZ(direction),
		Intensity: intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Direction returns the normalized direction light travels
func (dl *DirectionalLight) Direction() core.Vec3 {
	return dl.Frame.Normal()
}

// GetRadiance always returns zero: a single direction cannot be hit by a ray
func (dl *DirectionalLight) GetRadiance(sceneSphere SceneSphere, rayDirection, hitPoint core.Vec3) RadianceResult {
	return RadianceResult{}
}

func (dl *DirectionalLight) IsFinite() bool { return false }
func (dl *DirectionalLight) IsDelta() bool  { return true }
