package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-vcm/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, 3)

	tests := []struct {
		name      string
		ray       core.Ray
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMax:      core.MaxDistance,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits near an edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0.001, -1), core.NewVec3(0, 0, 1)),
			tMax:      core.MaxDistance,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMax:      core.MaxDistance,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)),
			tMax:      core.MaxDistance,
			shouldHit: false,
		},
		{
			name:      "Ray hits from behind",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			tMax:      core.MaxDistance,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Triangle behind the ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			tMax:      core.MaxDistance,
			shouldHit: false,
		},
		{
			name:      "Hit beyond current best distance",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMax:      0.5,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Intersect(tt.ray, tt.tMax)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.Dist-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Dist)
			}
			if hit.MaterialID != 3 {
				t.Errorf("Expected material 3, got %d", hit.MaterialID)
			}
			if hit.LightID != core.NoID {
				t.Errorf("Expected no light id, got %d", hit.LightID)
			}
		})
	}
}

func TestTriangle_TMinExcludesOrigin(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0)
	ray := core.Ray{Origin: core.NewVec3(0.25, 0.25, -1), Direction: core.NewVec3(0, 0, 1), TMin: 1.5}

	if _, isHit := triangle.Intersect(ray, core.MaxDistance); isHit {
		t.Error("Expected miss when the hit is closer than TMin")
	}
}

func TestTriangle_WindingFlipsNormalOnly(t *testing.T) {
	v0 := core.NewVec3(-1, -1, 0)
	v1 := core.NewVec3(1, -1, 0)
	v2 := core.NewVec3(0, 1, 0)

	ccw := NewTriangle(v0, v1, v2, 0)
	cw := NewTriangle(v0, v2, v1, 0)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(0.1, -0.2, 3), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(-2, 0, -2), core.NewVec3(1, 0.1, 1).Normalize()),
		core.NewRay(core.NewVec3(5, 5, -2), core.NewVec3(0, 0, 1)),
	}

	for i, ray := range rays {
		hitA, okA := ccw.Intersect(ray, core.MaxDistance)
		hitB, okB := cw.Intersect(ray, core.MaxDistance)

		if okA != okB {
			t.Errorf("Ray %d: winding changed hit result (%t vs %t)", i, okA, okB)
			continue
		}
		if ccw.Occluded(ray, core.MaxDistance) != cw.Occluded(ray, core.MaxDistance) {
			t.Errorf("Ray %d: winding changed occlusion result", i)
		}
		if !okA {
			continue
		}
		if math.Abs(hitA.Dist-hitB.Dist) > 1e-12 {
			t.Errorf("Ray %d: distances differ %f vs %f", i, hitA.Dist, hitB.Dist)
		}
		if hitA.Normal != hitB.Normal.Negate() {
			t.Errorf("Ray %d: expected opposite normals, got %v and %v", i, hitA.Normal, hitB.Normal)
		}
	}

	if ccw.GetNormal() != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected counter-clockwise normal +z, got %v", ccw.GetNormal())
	}
}

func TestTriangle_GrowBounds(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, -1, 2), core.NewVec3(3, 0, 0), core.NewVec3(1, 4, -1), 0)
	bounds := triangle.GrowBounds(core.NewEmptyAABB())

	if bounds.Min != core.NewVec3(0, -1, -1) || bounds.Max != core.NewVec3(3, 4, 2) {
		t.Errorf("Unexpected bounds %v", bounds)
	}
}
