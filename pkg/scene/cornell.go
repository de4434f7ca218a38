package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-vcm/pkg/core"
	"github.com/df07/go-vcm/pkg/geometry"
	"github.com/df07/go-vcm/pkg/lights"
	"github.com/df07/go-vcm/pkg/material"
)

// BoxMask selects the features of a Cornell box scene
type BoxMask uint32

const (
	LightCeiling    BoxMask = 1 << iota // Small area light box under the ceiling
	LightSun                            // Directional light
	LightPoint                          // Point light under the ceiling
	LightBackground                     // Constant environment light

	LargeMirrorSphere
	LargeGlassSphere
	SmallMirrorSphere
	SmallGlassSphere

	GlossyFloor

	BothSmallSpheres = SmallMirrorSphere | SmallGlassSphere
	BothLargeSpheres = LargeMirrorSphere | LargeGlassSphere
	DefaultBox       = LightCeiling | BothSmallSpheres
)

// Has reports whether every flag in other is set
func (m BoxMask) Has(other BoxMask) bool {
	return m&other == other
}

// Presets are the standard Cornell box configurations
var Presets = []BoxMask{
	GlossyFloor | BothSmallSpheres | LightSun,
	GlossyFloor | LargeMirrorSphere | LightCeiling,
	GlossyFloor | BothSmallSpheres | LightPoint,
	GlossyFloor | BothSmallSpheres | LightBackground,
}

// Material ids of the Cornell box
const (
	cornellLight0 = iota
	cornellLight1
	cornellGlossy
	cornellGreen
	cornellRed
	cornellWhite
	cornellMirror
	cornellGlass
	cornellBlue
)

const (
	cornellAreaIntensity = 25.03329895614464
	smallSphereRadius    = 0.5
	largeSphereRadius    = 0.8
)

// Box corners. Indices 0-3 lie on the back wall, 4-7 on the open front side;
// even pairs are on the floor.
var cornellCorners = [8]core.Vec3{
	{X: -1.27029, Y: 1.30455, Z: -1.28002},
	{X: 1.28975, Y: 1.30455, Z: -1.28002},
	{X: 1.28975, Y: 1.30455, Z: 1.28002},
	{X: -1.27029, Y: 1.30455, Z: 1.28002},
	{X: -1.27029, Y: -1.25549, Z: -1.28002},
	{X: 1.28975, Y: -1.25549, Z: -1.28002},
	{X: 1.28975, Y: -1.25549, Z: 1.28002},
	{X: -1.27029, Y: -1.25549, Z: 1.28002},
}

// Light box corners. Indices 0-3 form the emitting bottom face, 4-7 touch the ceiling.
var lightBoxCorners = [8]core.Vec3{
	{X: -0.25, Y: -0.25, Z: 1.26002},
	{X: 0.25, Y: -0.25, Z: 1.26002},
	{X: 0.25, Y: 0.25, Z: 1.26002},
	{X: -0.25, Y: 0.25, Z: 1.26002},
	{X: -0.25, Y: -0.25, Z: 1.28002},
	{X: 0.25, Y: -0.25, Z: 1.28002},
	{X: 0.25, Y: 0.25, Z: 1.28002},
	{X: -0.25, Y: 0.25, Z: 1.28002},
}

// NewCornellBox builds the Cornell box variant selected by mask
func NewCornellBox(resolution core.Vec2, mask BoxMask) *Scene {
	camera := geometry.NewCamera(
		core.NewVec3(-0.0439815, -4.12529, 0.222539),
		core.NewVec3(0.00688625, 0.998505, -0.0542161),
		core.NewVec3(3.73896e-4, 0.0542148, 0.998529),
		resolution,
		45,
	)

	s := New(camera)
	s.Name, s.Acronym = CornellName(mask)

	// Materials 0 and 1 only tag emitters
	s.AddMaterial(material.New())
	s.AddMaterial(material.New())
	s.AddMaterial(material.NewGlossy(core.NewVec3Splat(0.1), core.NewVec3Splat(0.7), 90))
	s.AddMaterial(material.NewDiffuse(core.NewVec3(0.156863, 0.803922, 0.172549)))
	s.AddMaterial(material.NewDiffuse(core.NewVec3(0.803922, 0.152941, 0.152941)))
	s.AddMaterial(material.NewDiffuse(core.NewVec3Splat(0.803922)))
	s.AddMaterial(material.NewMirror(core.NewVec3Splat(1)))
	s.AddMaterial(material.NewGlass(core.NewVec3Splat(1), 1.6))
	s.AddMaterial(material.NewDiffuse(core.NewVec3(0.156863, 0.172549, 0.803922)))

	addCornellWalls(s, mask)
	addCornellSpheres(s, mask)
	addCornellLights(s, mask)

	s.BuildSceneSphere()
	return s
}

func addCornellWalls(s *Scene, mask BoxMask) {
	cb := cornellCorners
	tri := geometry.NewTriangle

	floor := cornellWhite
	if mask.Has(GlossyFloor) {
		floor = cornellGlossy
	}

	s.AddGeometry(
		// Floor
		tri(cb[0], cb[4], cb[5], floor),
		tri(cb[5], cb[1], cb[0], floor),
		// Back wall
		tri(cb[0], cb[1], cb[2], cornellWhite),
		tri(cb[2], cb[3], cb[0], cornellWhite),
		// Ceiling
		tri(cb[2], cb[6], cb[7], cornellWhite),
		tri(cb[7], cb[3], cb[2], cornellWhite),
		// Left wall
		tri(cb[3], cb[7], cb[4], cornellGreen),
		tri(cb[4], cb[0], cb[3], cornellGreen),
		// Right wall
		tri(cb[1], cb[5], cb[6], cornellRed),
		tri(cb[6], cb[2], cb[1], cornellRed),
	)

	if !mask.Has(LightCeiling) {
		return
	}

	lb := lightBoxCorners
	s.AddGeometry(
		// Sides face outward
		tri(lb[0], lb[1], lb[5], cornellWhite),
		tri(lb[5], lb[4], lb[0], cornellWhite),
		tri(lb[2], lb[3], lb[7], cornellWhite),
		tri(lb[7], lb[6], lb[2], cornellWhite),
		tri(lb[3], lb[0], lb[4], cornellWhite),
		tri(lb[4], lb[7], lb[3], cornellWhite),
		tri(lb[1], lb[2], lb[6], cornellWhite),
		tri(lb[6], lb[5], lb[1], cornellWhite),
		// Emitting bottom faces down
		tri(lb[0], lb[2], lb[1], cornellLight0),
		tri(lb[2], lb[0], lb[3], cornellLight1),
	)
}

func addCornellSpheres(s *Scene, mask BoxMask) {
	cb := cornellCorners

	// Small spheres stand on the floor between the side walls and the middle
	leftWallCenter := cb[0].Add(cb[4]).Multiply(0.5).Add(core.NewVec3(0, 0, smallSphereRadius))
	rightWallCenter := cb[1].Add(cb[5]).Multiply(0.5).Add(core.NewVec3(0, 0, smallSphereRadius))
	xlen := rightWallCenter.X - leftWallCenter.X
	offset := core.NewVec3(2*xlen/7, 0, 0)

	if mask.Has(SmallMirrorSphere) {
		s.AddGeometry(geometry.NewSphere(leftWallCenter.Add(offset), smallSphereRadius, cornellMirror))
	}
	if mask.Has(SmallGlassSphere) {
		s.AddGeometry(geometry.NewSphere(rightWallCenter.Subtract(offset), smallSphereRadius, cornellGlass))
	}

	// A single large sphere in the middle of the floor
	center := cb[0].Add(cb[1]).Add(cb[4]).Add(cb[5]).Multiply(0.25).Add(core.NewVec3(0, 0, largeSphereRadius))
	switch {
	case mask.Has(LargeMirrorSphere):
		s.AddGeometry(geometry.NewSphere(center, largeSphereRadius, cornellMirror))
	case mask.Has(LargeGlassSphere):
		s.AddGeometry(geometry.NewSphere(center, largeSphereRadius, cornellGlass))
	}
}

func addCornellLights(s *Scene, mask BoxMask) {
	if mask.Has(LightCeiling) {
		lb := lightBoxCorners
		intensity := core.NewVec3Splat(cornellAreaIntensity)

		// Same vertices and winding as the emitting triangles
		l0 := s.AddLight(lights.NewAreaLight(lb[0], lb[2], lb[1], intensity))
		l1 := s.AddLight(lights.NewAreaLight(lb[2], lb[0], lb[3], intensity))
		s.MaterialToLight[cornellLight0] = l0
		s.MaterialToLight[cornellLight1] = l1
	}

	if mask.Has(LightSun) {
		s.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, 1.5, -1), core.NewVec3(0.5, 0.2, 0).Multiply(20)))
	}

	if mask.Has(LightPoint) {
		s.AddLight(lights.NewPointLight(core.NewVec3(0, -0.5, 1.0), core.NewVec3Splat(70*(1/(4*math.Pi)))))
	}

	if mask.Has(LightBackground) {
		s.AddLight(lights.NewBackgroundLight())
	}
}

// CornellName returns a description and an acronym for a box configuration
func CornellName(mask BoxMask) (string, string) {
	var name, acronym strings.Builder

	if mask.Has(GlossyFloor) {
		name.WriteString("glossy ")
		acronym.WriteString("g")
	}

	switch {
	case mask.Has(BothLargeSpheres):
		name.WriteString("large mirror+glass")
		acronym.WriteString("lmg")
	case mask.Has(LargeMirrorSphere):
		name.WriteString("large mirror")
		acronym.WriteString("lm")
	case mask.Has(LargeGlassSphere):
		name.WriteString("large glass")
		acronym.WriteString("lg")
	case mask.Has(BothSmallSpheres):
		name.WriteString("small mirror+glass")
		acronym.WriteString("smg")
	case mask.Has(SmallMirrorSphere):
		name.WriteString("small mirror")
		acronym.WriteString("sm")
	case mask.Has(SmallGlassSphere):
		name.WriteString("small glass")
		acronym.WriteString("sg")
	default:
		name.WriteString("empty")
		acronym.WriteString("e")
	}

	name.WriteString(" + ")

	switch {
	case mask.Has(LightSun):
		name.WriteString("sun")
		acronym.WriteString("s")
	case mask.Has(LightCeiling):
		name.WriteString("ceiling (small)")
		acronym.WriteString("c")
	case mask.Has(LightPoint):
		name.WriteString("point")
		acronym.WriteString("p")
	case mask.Has(LightBackground):
		name.WriteString("background")
		acronym.WriteString("b")
	default:
		name.WriteString("no light")
		acronym.WriteString("n")
	}

	return name.String(), acronym.String()
}

// PresetByIndex returns the preset mask at index i
func PresetByIndex(i int) (BoxMask, error) {
	if i < 0 || i >= len(Presets) {
		return 0, fmt.Errorf("scene index %d out of range [0, %d)", i, len(Presets))
	}
	return Presets[i], nil
}
