package detection

import (
	"errors"
	"fmt"
	"math"
)

// BytesPerPixel is the size of one RGBA pixel in a buffer.
const BytesPerPixel = 4

var (
	// ErrInvalidInput marks a buffer whose shape does not match its declared
	// dimensions, or whose dimensions have no area.
	ErrInvalidInput = errors.New("invalid image buffer")

	// ErrTooLarge marks dimensions whose byte size cannot be addressed.
	ErrTooLarge = errors.New("image too large")
)

// raster is a width×height view over a row-major RGBA buffer.
type raster struct {
	pix    []uint8
	width  int
	height int
}

// validateBuffer checks the buffer contract before anything is allocated or
// mutated.
func validateBuffer(pixLen, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidInput, width, height)
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return fmt.Errorf("%w: %dx%d pixels exceeds addressable size", ErrTooLarge, width, height)
	}
	if want := width * height * BytesPerPixel; pixLen != want {
		return fmt.Errorf("%w: buffer is %d bytes, %dx%d RGBA needs %d",
			ErrInvalidInput, pixLen, width, height, want)
	}
	return nil
}

func newRaster(width, height int) *raster {
	return &raster{
		pix:    make([]uint8, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}
}

// contains reports whether (x, y) lies inside the raster.
func (r *raster) contains(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

func (r *raster) offset(x, y int) int {
	return (y*r.width + x) * BytesPerPixel
}

func (r *raster) at(x, y int) Color {
	i := r.offset(x, y)
	s := r.pix[i : i+BytesPerPixel : i+BytesPerPixel]
	return Color{R: s[0], G: s[1], B: s[2], A: s[3]}
}

func (r *raster) set(x, y int, c Color) {
	i := r.offset(x, y)
	s := r.pix[i : i+BytesPerPixel : i+BytesPerPixel]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}
