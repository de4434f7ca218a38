package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-vcm/pkg/core"
)

// Framebuffer accumulates radiance samples per pixel
type Framebuffer struct {
	color      []core.Vec3
	resolution core.Vec2
	resX, resY int
}

// NewFramebuffer returns a zeroed framebuffer of the given resolution
func NewFramebuffer(resolution core.Vec2) *Framebuffer {
	fb := &Framebuffer{}
	fb.Setup(resolution)
	return fb
}

// Setup resizes the framebuffer and clears it
func (fb *Framebuffer) Setup(resolution core.Vec2) {
	fb.resolution = resolution
	fb.resX = int(resolution.X)
	fb.resY = int(resolution.Y)
	fb.color = make([]core.Vec3, fb.resX*fb.resY)
}

// AddColor accumulates c into the pixel containing the raster sample.
// Samples outside [0, width) x [0, height) are dropped.
func (fb *Framebuffer) AddColor(sample core.Vec2, c core.Vec3) {
	if !(sample.X >= 0 && sample.X < float64(fb.resX)) {
		return
	}
	if !(sample.Y >= 0 && sample.Y < float64(fb.resY)) {
		return
	}

	i := int(sample.X) + int(sample.Y)*fb.resX
	fb.color[i] = fb.color[i].Add(c)
}

// Add accumulates every pixel of other into fb
func (fb *Framebuffer) Add(other *Framebuffer) error {
	if fb.resX != other.resX || fb.resY != other.resY {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrResolutionMismatch, fb.resX, fb.resY, other.resX, other.resY)
	}
	for i := range fb.color {
		fb.color[i] = fb.color[i].Add(other.color[i])
	}
	return nil
}

// Scale multiplies every pixel by s
func (fb *Framebuffer) Scale(s float64) {
	for i := range fb.color {
		fb.color[i] = fb.color[i].Multiply(s)
	}
}

// Clear zeroes every pixel
func (fb *Framebuffer) Clear() {
	for i := range fb.color {
		fb.color[i] = core.Vec3{}
	}
}

// Clone returns a deep copy
func (fb *Framebuffer) Clone() *Framebuffer {
	clone := *fb
	clone.color = make([]core.Vec3, len(fb.color))
	copy(clone.color, fb.color)
	return &clone
}

func (fb *Framebuffer) Resolution() core.Vec2 { return fb.resolution }
func (fb *Framebuffer) Width() int            { return fb.resX }
func (fb *Framebuffer) Height() int           { return fb.resY }

// Pixel returns the accumulated value of pixel (x, y)
func (fb *Framebuffer) Pixel(x, y int) core.Vec3 {
	return fb.color[x+y*fb.resX]
}

// TotalLuminance sums the luminance of all pixels
func (fb *Framebuffer) TotalLuminance() float64 {
	var total float64
	for _, c := range fb.color {
		total += c.Luminance()
	}
	return total
}

// ToImage converts the framebuffer to 8-bit sRGB-ish colors, clamping to
// [0, 1] and applying the gamma curve. Raster row 0 is the top image row.
func (fb *Framebuffer) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.resX, fb.resY))
	for y := 0; y < fb.resY; y++ {
		for x := 0; x < fb.resX; x++ {
			img.SetRGBA(x, y, vec3ToColor(fb.Pixel(x, y), gamma))
		}
	}
	return img
}

func vec3ToColor(c core.Vec3, gamma float64) color.RGBA {
	c = c.Clamp(0.0, 1.0).GammaCorrect(gamma)

	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}
