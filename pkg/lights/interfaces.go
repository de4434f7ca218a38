package lights

import "github.com/df07/go-vcm/pkg/core"

type LightType string

const (
	LightTypeArea        LightType = "area"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeBackground  LightType = "background"
)

// Light is an emitter in the scene. The set of implementations is closed:
// AreaLight, PointLight, DirectionalLight and BackgroundLight.
type Light interface {
	Type() LightType

	// GetRadiance returns the radiance leaving the light toward the origin of a
	// ray with the given direction that hit the light at hitPoint, along with
	// the densities an algorithm needs for MIS weights.
	// Delta lights cannot be hit and always return a zero result.
	GetRadiance(sceneSphere SceneSphere, rayDirection, hitPoint core.Vec3) RadianceResult

	// IsFinite reports whether the light has a position in the scene
	IsFinite() bool

	// IsDelta reports whether the light can only be reached by explicit sampling
	IsDelta() bool
}

// RadianceResult is the answer to a radiance query
type RadianceResult struct {
	Radiance     core.Vec3
	DirectPDFA   float64 // Density of picking the hit point when sampling the light directly (area measure)
	EmissionPDFW float64 // Density of emitting along -rayDirection (solid angle measure, times the position density)
}
