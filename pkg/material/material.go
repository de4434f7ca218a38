package material

import "github.com/df07/go-vcm/pkg/core"

// Material describes the scattering properties of a surface.
// Only the data is modeled here; algorithms that need a BSDF build one from it.
type Material struct {
	DiffuseReflectance core.Vec3
	PhongReflectance   core.Vec3
	PhongExponent      float64
	MirrorReflectance  core.Vec3

	// IOR is the index of refraction; negative for opaque surfaces
	IOR float64
}

// New returns a black, opaque material. Emitters use it as a placeholder
// so material and light indices stay aligned.
func New() Material {
	return Material{
		PhongExponent: 1,
		IOR:           -1,
	}
}

// NewDiffuse returns an opaque Lambertian material
func NewDiffuse(reflectance core.Vec3) Material {
	m := New()
	m.DiffuseReflectance = reflectance
	return m
}

// NewGlossy returns an opaque material with diffuse and Phong lobes
func NewGlossy(diffuse, phong core.Vec3, exponent float64) Material {
	m := New()
	m.DiffuseReflectance = diffuse
	m.PhongReflectance = phong
	m.PhongExponent = exponent
	return m
}

// NewMirror returns a perfect specular reflector
func NewMirror(reflectance core.Vec3) Material {
	m := New()
	m.MirrorReflectance = reflectance
	return m
}

// NewGlass returns a dielectric with the given index of refraction.
// The mirror reflectance scales both the reflected and refracted parts.
func NewGlass(reflectance core.Vec3, ior float64) Material {
	m := NewMirror(reflectance)
	m.IOR = ior
	return m
}

// IsDielectric reports whether the material refracts light
func (m Material) IsDielectric() bool {
	return m.IOR > 0
}

// IsBlack reports whether the material reflects nothing
func (m Material) IsBlack() bool {
	return m.DiffuseReflectance.IsZero() && m.PhongReflectance.IsZero() && m.MirrorReflectance.IsZero()
}
