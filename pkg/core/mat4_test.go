package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func testMatrices() map[string]Mat4 {
	camera := Identity()
	camera.SetRow(0, NewVec3(1, 0, 0), -0.5)
	camera.SetRow(1, NewVec3(0, 0, 1), 2)
	camera.SetRow(2, NewVec3(0, -1, 0), -4)

	return map[string]Mat4{
		"identity":    Identity(),
		"scale":       Scale(NewVec3(2, 3, 4)),
		"translate":   Translate(NewVec3(1, -2, 3)),
		"perspective": Perspective(45, 0.1, 10000),
		"camera":      Perspective(60, 0.1, 10000).Mul(camera),
		"general": {
			{2, 1, 0, 3},
			{0, -1, 4, 1},
			{1, 0, 1, -2},
			{3, 2, -1, 1},
		},
	}
}

func TestMat4_InvertedComposesToIdentity(t *testing.T) {
	for name, m := range testMatrices() {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(m.Mul(m.Inverted()), Identity(), approx); diff != "" {
				t.Errorf("m * inverse(m) is not identity (-got +want):\n%s", diff)
			}
			if diff := cmp.Diff(m.Inverted().Mul(m), Identity(), approx); diff != "" {
				t.Errorf("inverse(m) * m is not identity (-got +want):\n%s", diff)
			}
		})
	}
}

func TestMat4_InvertedKnown(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want Mat4
	}{
		{"scale", Scale(NewVec3(2, 4, -5)), Scale(NewVec3(0.5, 0.25, -0.2))},
		{"translate", Translate(NewVec3(1, -2, 3)), Translate(NewVec3(-1, 2, -3))},
		{"translate then scale", Translate(NewVec3(1, 2, 3)).Mul(Scale(NewVec3(2, 2, 2))), Mat4{
			{0.5, 0, 0, -0.5},
			{0, 0.5, 0, -1},
			{0, 0, 0.5, -1.5},
			{0, 0, 0, 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.m.Inverted(), tt.want, approx); diff != "" {
				t.Errorf("unexpected inverse (-got +want):\n%s", diff)
			}
		})
	}
}

func TestMat4_MulAndDeterminant(t *testing.T) {
	a := Mat4{
		{1, 2, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 3},
		{0, 0, 0, 1},
	}
	b := Mat4{
		{1, 0, 0, 0},
		{4, 1, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 1},
	}
	want := Mat4{
		{9, 2, 0, 0},
		{4, 1, 0, 0},
		{0, 0, 2, 3},
		{0, 0, 0, 1},
	}
	if got := a.Mul(b); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	general := testMatrices()["general"]
	if d := general.Determinant(); math.Abs(d-(-14)) > 1e-9 {
		t.Errorf("Expected determinant -14, got %f", d)
	}
	if d := Scale(NewVec3(2, 3, 4)).Determinant(); d != 24 {
		t.Errorf("Expected determinant 24, got %f", d)
	}
}

func TestMat4_InvertedSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"all zero", Mat4{}},
		{"flattening scale", Scale(NewVec3(1, 1, 0))},
		{"duplicate rows", Mat4{
			{1, 2, 3, 4},
			{1, 2, 3, 4},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Inverted(); got != Identity() {
				t.Errorf("Expected identity for singular matrix, got %v", got)
			}
		})
	}
}

func TestMat4_TransformPoint(t *testing.T) {
	m := Translate(NewVec3(1, 2, 3)).Mul(Scale(NewVec3(2, 2, 2)))
	got := m.TransformPoint(NewVec3(1, 1, 1))
	if got != NewVec3(3, 4, 5) {
		t.Errorf("Expected (3,4,5), got %v", got)
	}

	// Vectors ignore translation
	if v := m.TransformVector(NewVec3(1, 0, 0)); v != NewVec3(2, 0, 0) {
		t.Errorf("Expected (2,0,0), got %v", v)
	}
}

func TestMat4_PerspectiveDepthRange(t *testing.T) {
	p := Perspective(90, 0.1, 10000)

	near := p.TransformPoint(NewVec3(0, 0, -0.1))
	far := p.TransformPoint(NewVec3(0, 0, -10000))

	if math.Abs(near.Z+1) > 1e-9 {
		t.Errorf("Expected near plane at z=-1, got %f", near.Z)
	}
	if math.Abs(far.Z-1) > 1e-9 {
		t.Errorf("Expected far plane at z=1, got %f", far.Z)
	}

	// 90 degree field of view: a point on the 45 degree line lands on the edge
	edge := p.TransformPoint(NewVec3(1, 0, -1))
	if math.Abs(edge.X-1) > 1e-9 {
		t.Errorf("Expected x=1 at the frustum edge, got %f", edge.X)
	}
}
