package core

// Vec2 represents a 2D vector, used for raster coordinates, resolutions and
// 2D random samples
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewVec2Splat creates a Vec2 with the same value in both components
func NewVec2Splat(s float64) Vec2 {
	return Vec2{X: s, Y: s}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Subtract returns the difference of two vectors
func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Multiply returns the vector scaled by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}
