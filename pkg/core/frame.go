package core

import "math"

// Frame is an orthonormal basis used to move directions between world space
// and a local space where Z is the surface normal
type Frame struct {
	X, Y, Z Vec3
}

// NewFrameFromZ builds a frame whose Z axis is the normalized z.
// z must be non-zero.
func NewFrameFromZ(z Vec3) Frame {
	tmpZ := z.Normalize()
	tmpX := NewVec3(1, 0, 0)
	if math.Abs(tmpZ.X) > 0.99 {
		tmpX = NewVec3(0, 1, 0)
	}
	tmpY := tmpZ.Cross(tmpX).Normalize()

	return Frame{
		X: tmpY.Cross(tmpZ),
		Y: tmpY,
		Z: tmpZ,
	}
}

// ToWorld converts a direction from local to world coordinates
func (f Frame) ToWorld(a Vec3) Vec3 {
	return f.X.Multiply(a.X).Add(f.Y.Multiply(a.Y)).Add(f.Z.Multiply(a.Z))
}

// ToLocal converts a direction from world to local coordinates
func (f Frame) ToLocal(a Vec3) Vec3 {
	return NewVec3(a.Dot(f.X), a.Dot(f.Y), a.Dot(f.Z))
}

func (f Frame) Binormal() Vec3 { return f.X }
func (f Frame) Tangent() Vec3  { return f.Y }
func (f Frame) Normal() Vec3   { return f.Z }
