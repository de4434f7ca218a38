package scene

import (
	"github.com/df07/go-vcm/pkg/core"
	"github.com/df07/go-vcm/pkg/geometry"
	"github.com/df07/go-vcm/pkg/lights"
	"github.com/df07/go-vcm/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is built once and then only read, so workers can share it.
type Scene struct {
	Name    string // Human readable description
	Acronym string // Short form used in file names

	Camera    *geometry.Camera
	Geometry  *geometry.List
	Materials []material.Material
	Lights    []lights.Light

	// MaterialToLight maps emitting surface materials to their light
	MaterialToLight map[int]int
	// BackgroundIndex is the index of the background light, core.NoID if none
	BackgroundIndex int

	SceneSphere lights.SceneSphere
}

// New creates an empty scene viewed through camera
func New(camera *geometry.Camera) *Scene {
	return &Scene{
		Camera:          camera,
		Geometry:        geometry.NewList(),
		MaterialToLight: make(map[int]int),
		BackgroundIndex: core.NoID,
	}
}

// AddMaterial appends a material and returns its id
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddGeometry appends primitives to the scene aggregate
func (s *Scene) AddGeometry(g ...geometry.Geometry) {
	s.Geometry.Add(g...)
}

// AddLight appends a light and returns its index.
// Adding a background light makes it the scene background.
func (s *Scene) AddLight(light lights.Light) int {
	s.Lights = append(s.Lights, light)
	index := len(s.Lights) - 1
	if light.Type() == lights.LightTypeBackground {
		s.BackgroundIndex = index
	}
	return index
}

// Intersect finds the nearest surface along the ray and resolves the light
// it belongs to, if any
func (s *Scene) Intersect(ray core.Ray) (core.Intersection, bool) {
	hit, ok := s.Geometry.Intersect(ray, core.MaxDistance)
	if !ok {
		return core.NewIntersection(), false
	}

	hit.LightID = core.NoID
	if lightID, emits := s.MaterialToLight[hit.MaterialID]; emits {
		hit.LightID = lightID
	}
	return hit, true
}

// Occluded reports whether anything blocks the segment leaving point along
// direction for distance tMax. Both ends are pulled in by core.RayEpsilon so
// the surfaces the segment connects do not shadow it.
func (s *Scene) Occluded(point, direction core.Vec3, tMax float64) bool {
	ray := core.Ray{
		Origin:    point.Add(direction.Multiply(core.RayEpsilon)),
		Direction: direction,
		TMin:      0,
	}
	return s.Geometry.Occluded(ray, tMax-2*core.RayEpsilon)
}

// BuildSceneSphere computes the bounding sphere of all geometry.
// It must run after the last primitive is added.
func (s *Scene) BuildSceneSphere() {
	bounds := s.Geometry.GrowBounds(core.NewEmptyAABB())
	s.SceneSphere = lights.NewSceneSphere(bounds)
}

// GetLightCount returns the number of lights in the scene
func (s *Scene) GetLightCount() int {
	return len(s.Lights)
}

// GetLight returns the light at index i
func (s *Scene) GetLight(i int) lights.Light {
	return s.Lights[i]
}

// GetBackground returns the background light, or nil if the scene has none
func (s *Scene) GetBackground() lights.Light {
	if s.BackgroundIndex < 0 {
		return nil
	}
	return s.Lights[s.BackgroundIndex]
}

// GetPrimitiveCount returns the number of primitives in the scene aggregate
func (s *Scene) GetPrimitiveCount() int {
	return s.Geometry.Len()
}
