package lights

import "github.com/df07/go-vcm/pkg/core"

// DefaultBackgroundColor is a light sky blue
var DefaultBackgroundColor = core.NewVec3(135, 206, 250).Multiply(1.0 / 255.0)

// BackgroundLight is a constant environment surrounding the scene
type BackgroundLight struct {
	Color core.Vec3
	Scale float64
}

// NewBackgroundLight creates a background with the default color and unit scale
func NewBackgroundLight() *BackgroundLight {
	return &BackgroundLight{
		Color: DefaultBackgroundColor,
		Scale: 1.0,
	}
}

func (bl *BackgroundLight) Type() LightType {
	return LightTypeBackground
}

// GetRadiance returns the scaled color for every direction. Emission is
// sampled as a direction on the sphere and a point on the scene's bounding disc.
func (bl *BackgroundLight) GetRadiance(sceneSphere SceneSphere, rayDirection, hitPoint core.Vec3) RadianceResult {
	directPdf := core.UniformSpherePdfW()
	positionPdf := core.ConcentricDiscPdfA() * sceneSphere.InvRadiusSqr

	return RadianceResult{
		Radiance:     bl.Color.Multiply(bl.Scale),
		DirectPDFA:   directPdf,
		EmissionPDFW: directPdf * positionPdf,
	}
}

func (bl *BackgroundLight) IsFinite() bool { return false }
func (bl *BackgroundLight) IsDelta() bool  { return false }
