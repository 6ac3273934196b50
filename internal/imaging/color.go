package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sprite-tools-mcp/internal/detection"
)

// RGBAColor represents an RGBA color with 8-bit, non-premultiplied components.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"` // 0 = fully transparent, 255 = fully opaque
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult describes a single pixel and how sprite detection classifies it.
type ColorResult struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Hex  string    `json:"hex"` // "#RRGGBB" (no alpha)
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`

	// Background is true when the pixel is ignored by sprite detection.
	Background bool `json:"background"`
}

// SampleColor reports the color at (x, y) and whether sprite detection treats it
// as background.
//
// Coordinates are 0-based relative to the image's top-left corner. The color is
// converted to non-premultiplied 8-bit channels first, which is the same view the
// detector gets after cloning, so Background agrees with extraction results even
// for semi-transparent pixels.
//
// Returns an error if the coordinates are outside the image.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	nc := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
	cf := colorful.Color{
		R: float64(nc.R) / 255,
		G: float64(nc.G) / 255,
		B: float64(nc.B) / 255,
	}
	h, s, l := cf.Hsl()

	return &ColorResult{
		X:    x,
		Y:    y,
		Hex:  strings.ToUpper(cf.Hex()),
		RGBA: RGBAColor{R: nc.R, G: nc.G, B: nc.B, A: nc.A},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
		Background: detection.IsBackground(detection.Color{R: nc.R, G: nc.G, B: nc.B, A: nc.A}),
	}, nil
}

// SampleColors samples several points in one call, in input order.
// If any point is out of bounds no partial result is returned.
func SampleColors(img image.Image, points []image.Point) ([]ColorResult, error) {
	results := make([]ColorResult, 0, len(points))
	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, *c)
	}
	return results, nil
}
