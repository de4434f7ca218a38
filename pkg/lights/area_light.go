package lights

import (
	"math"

	"github.com/df07/go-vcm/pkg/core"
)

// AreaLight is a one-sided triangular emitter with constant radiance.
// It emits on the side its frame normal points to.
type AreaLight struct {
	P0, E1, E2 core.Vec3
	Frame      core.Frame
	Intensity  core.Vec3
	InvArea    float64
}

// NewAreaLight creates an emitter over the triangle p0, p1, p2. The winding
// determines the emitting side. A degenerate triangle gives an infinite InvArea.
func NewAreaLight(p0, p1, p2, intensity core.Vec3) *AreaLight {
	e1 := p1.Subtract(p0)
	e2 := p2.Subtract(p0)
	normal := e1.Cross(e2)

	return &AreaLight{
		P0:        p0,
		E1:        e1,
		E2:        e2,
		Frame:     core.NewFrameFromZ(normal),
		Intensity: intensity,
		InvArea:   2.0 / normal.Length(),
	}
}

func (al *AreaLight) Type() LightType {
	return LightTypeArea
}

// GetRadiance returns the intensity when the ray arrives at the emitting side
func (al *AreaLight) GetRadiance(sceneSphere SceneSphere, rayDirection, hitPoint core.Vec3) RadianceResult {
	cosOutL := math.Max(0, al.Frame.Normal().Dot(rayDirection.Negate()))
	if cosOutL == 0 {
		return RadianceResult{}
	}

	return RadianceResult{
		Radiance:     al.Intensity,
		DirectPDFA:   al.InvArea,
		EmissionPDFW: core.CosHemispherePdfW(al.Frame.Normal(), rayDirection.Negate()) * al.InvArea,
	}
}

// Area returns the surface area of the emitter
func (al *AreaLight) Area() float64 {
	return 1.0 / al.InvArea
}

func (al *AreaLight) IsFinite() bool { return true }
func (al *AreaLight) IsDelta() bool  { return false }
