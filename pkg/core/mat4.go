package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a row-major 4x4 transformation matrix, indexed as m[row][col]
type Mat4 [4][4]float64

// Identity returns the identity matrix
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Scale returns a matrix scaling each axis by the matching component of s
func Scale(s Vec3) Mat4 {
	return Mat4{
		{s.X, 0, 0, 0},
		{0, s.Y, 0, 0},
		{0, 0, s.Z, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a matrix translating points by t
func Translate(t Vec3) Mat4 {
	return Mat4{
		{1, 0, 0, t.X},
		{0, 1, 0, t.Y},
		{0, 0, 1, t.Z},
		{0, 0, 0, 1},
	}
}

// Perspective returns a projection for a camera looking down -z.
// Camera-space z in [-near, -far] maps to [-1, 1] after the homogeneous divide.
// fovDegrees is the full field of view; 0 < near < far.
func Perspective(fovDegrees, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovDegrees*math.Pi/360.0)
	d := 1.0 / (near - far)

	return Mat4{
		{f, 0, 0, 0},
		{0, -f, 0, 0},
		{0, 0, (near + far) * d, 2.0 * near * far * d},
		{0, 0, -1, 0},
	}
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	return fromMgl(m.mgl().Mul4(other.mgl()))
}

// TransformVector applies the upper 3x3 part of the matrix to v (no translation)
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// TransformPoint transforms p as a homogeneous point and performs the
// perspective divide
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	invW := 1.0 / w

	return Vec3{
		X: (m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]) * invW,
		Y: (m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]) * invW,
		Z: (m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]) * invW,
	}
}

// Determinant returns the determinant of the matrix
func (m Mat4) Determinant() float64 {
	return m.mgl().Det()
}

// Inverted returns the inverse of the matrix.
// A singular matrix (determinant exactly zero) yields the identity.
func (m Mat4) Inverted() Mat4 {
	g := m.mgl()
	if g.Det() == 0 {
		return Identity()
	}
	return fromMgl(g.Inv())
}

// mgl converts to mathgl's column-major layout
func (m Mat4) mgl() mgl64.Mat4 {
	var out mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Set(r, c, m[r][c])
		}
	}
	return out
}

func fromMgl(g mgl64.Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = g.At(r, c)
		}
	}
	return out
}
