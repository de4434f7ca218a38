package geometry

import (
	"math"

	"github.com/df07/go-vcm/pkg/core"
)

// Clip planes of the camera projection
const (
	cameraNear = 0.1
	cameraFar  = 10000.0
)

// Camera is a pinhole camera that maps raster coordinates to world-space rays.
// Raster (0,0) is a corner of the image; (Resolution.X, Resolution.Y) the opposite one.
type Camera struct {
	Position       core.Vec3
	Forward        core.Vec3
	Resolution     core.Vec2
	RasterToWorld  core.Mat4
	WorldToRaster  core.Mat4
	ImagePlaneDist float64 // Distance to an image plane where one pixel has unit size
}

// NewCamera builds the camera transforms from an eye position, a viewing
// direction, an up hint and a horizontal field of view in degrees.
// forward and up must not be parallel.
func NewCamera(position, forward, up core.Vec3, resolution core.Vec2, horizontalFOV float64) *Camera {
	forward = forward.Normalize()
	up = up.Cross(forward.Negate()).Normalize()
	left := forward.Negate().Cross(up)

	pos := core.NewVec3(
		up.Dot(position),
		left.Dot(position),
		forward.Negate().Dot(position),
	)

	worldToCamera := core.Identity()
	worldToCamera.SetRow(0, up, -pos.X)
	worldToCamera.SetRow(1, left, -pos.Y)
	worldToCamera.SetRow(2, forward.Negate(), -pos.Z)

	perspective := core.Perspective(horizontalFOV, cameraNear, cameraFar)
	worldToNScreen := perspective.Mul(worldToCamera)
	nscreenToWorld := worldToNScreen.Inverted()

	tanHalfAngle := math.Tan(horizontalFOV * math.Pi / 360.0)

	rasterToWorld := nscreenToWorld.
		Mul(core.Translate(core.NewVec3(-1, -1, 0))).
		Mul(core.Scale(core.NewVec3(2.0/resolution.X, 2.0/resolution.Y, 0)))

	worldToRaster := core.Scale(core.NewVec3(resolution.X*0.5, resolution.Y*0.5, 0)).
		Mul(core.Translate(core.NewVec3(1, 1, 0))).
		Mul(worldToNScreen)

	return &Camera{
		Position:       position,
		Forward:        forward,
		Resolution:     resolution,
		RasterToWorld:  rasterToWorld,
		WorldToRaster:  worldToRaster,
		ImagePlaneDist: resolution.X / (2.0 * tanHalfAngle),
	}
}

// Width returns the horizontal resolution in pixels
func (c *Camera) Width() int {
	return int(c.Resolution.X)
}

// Height returns the vertical resolution in pixels
func (c *Camera) Height() int {
	return int(c.Resolution.Y)
}

// GenerateRay returns the primary ray through a raster-space sample
func (c *Camera) GenerateRay(rasterXY core.Vec2) core.Ray {
	worldRaster := c.RasterToWorld.TransformPoint(core.NewVec3(rasterXY.X, rasterXY.Y, 0))

	return core.Ray{
		Origin:    c.Position,
		Direction: worldRaster.Subtract(c.Position).Normalize(),
		TMin:      0,
	}
}

// RasterToWorldPoint maps a raster sample to its world-space point on the image plane
func (c *Camera) RasterToWorldPoint(rasterXY core.Vec2) core.Vec3 {
	return c.RasterToWorld.TransformPoint(core.NewVec3(rasterXY.X, rasterXY.Y, 0))
}

// WorldToRasterPoint projects a world-space point into raster space
func (c *Camera) WorldToRasterPoint(p core.Vec3) core.Vec2 {
	r := c.WorldToRaster.TransformPoint(p)
	return core.NewVec2(r.X, r.Y)
}

// CheckRaster reports whether a raster position lies on the image
func (c *Camera) CheckRaster(rasterXY core.Vec2) bool {
	return rasterXY.X >= 0 && rasterXY.Y >= 0 &&
		rasterXY.X < c.Resolution.X && rasterXY.Y < c.Resolution.Y
}

// RasterToIndex returns the row-major pixel index containing a raster position
func (c *Camera) RasterToIndex(rasterXY core.Vec2) int {
	return int(math.Floor(rasterXY.X)) + int(math.Floor(rasterXY.Y))*int(c.Resolution.X)
}
