package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-vcm/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Intersect(ray, core.MaxDistance)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.Dist)
	}
}

func TestSphere_Intersect_TowardCenter(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		radius float64
		origin core.Vec3
	}{
		{"unit sphere on z axis", core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 0, 5)},
		{"offset sphere", core.NewVec3(1, 1, 1), 2, core.NewVec3(4, 5, 1)},
		{"large distance", core.NewVec3(0, -3, 2), 0.5, core.NewVec3(100, 40, -60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, 6)
			toCenter := tt.center.Subtract(tt.origin)
			ray := core.NewRay(tt.origin, toCenter.Normalize())

			hit, isHit := sphere.Intersect(ray, core.MaxDistance)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			expected := toCenter.Length() - tt.radius
			if math.Abs(hit.Dist-expected) > 1e-9*math.Max(1, expected) {
				t.Errorf("Expected t=%f, got t=%f", expected, hit.Dist)
			}

			// The outward normal points back at the ray origin
			if dot := hit.Normal.Dot(ray.Direction.Negate()); math.Abs(dot-1) > 1e-9 {
				t.Errorf("Expected normal facing the origin, got %v", hit.Normal)
			}
			if hit.MaterialID != 6 {
				t.Errorf("Expected material 6, got %d", hit.MaterialID)
			}
		})
	}
}

func TestSphere_Intersect_LeavingSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, 0)
	normals := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}

	for _, n := range normals {
		origin := sphere.Center.Add(n.Multiply(sphere.Radius))
		ray := core.NewRay(origin, n)
		if hit, isHit := sphere.Intersect(ray, core.MaxDistance); isHit {
			t.Errorf("Normal %v: expected no hit leaving the surface, got t=%g", n, hit.Dist)
		}
	}
}

func TestSphere_Intersect_EnteringSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, 0)
	normals := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}

	// Starting on the surface the near root is t=0, so the far side is reported
	for _, n := range normals {
		origin := sphere.Center.Add(n.Multiply(sphere.Radius))
		ray := core.NewRay(origin, n.Negate())

		hit, isHit := sphere.Intersect(ray, core.MaxDistance)
		if !isHit {
			t.Errorf("Normal %v: expected hit on the far side, got miss", n)
			continue
		}
		if math.Abs(hit.Dist-2*sphere.Radius) > 1e-9 {
			t.Errorf("Normal %v: expected t=%g, got %g", n, 2*sphere.Radius, hit.Dist)
		}
		if hit.Normal.Dot(n) > -1+1e-9 {
			t.Errorf("Normal %v: expected exit normal %v, got %v", n, n.Negate(), hit.Normal)
		}
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Intersect(ray, core.MaxDistance)
	if !isHit {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if math.Abs(hit.Dist-1) > 1e-9 {
		t.Errorf("Expected far root t=1, got %f", hit.Dist)
	}
	// Normals are outward, not face-forwarded
	if math.Abs(hit.Normal.Z-1) > 1e-9 {
		t.Errorf("Expected outward normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphere_Intersect_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// tMax excludes both roots
	if hit, isHit := sphere.Intersect(ray, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.Dist)
	}

	// tMin excludes the near root, the far root remains
	ray.TMin = 2
	hit, isHit := sphere.Intersect(ray, core.MaxDistance)
	if !isHit || math.Abs(hit.Dist-3) > 1e-9 {
		t.Errorf("Expected far root at t=3, got hit=%t t=%f", isHit, hit.Dist)
	}

	// tMin beyond both roots
	ray.TMin = 3.5
	if hit, isHit := sphere.Intersect(ray, core.MaxDistance); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.Dist)
	}
}

func TestSphere_GrowBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, 0)
	bounds := sphere.GrowBounds(core.NewEmptyAABB())

	if bounds.Min != core.NewVec3(0.5, 1.5, 2.5) || bounds.Max != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected bounds %v", bounds)
	}
}
