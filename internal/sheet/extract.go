// Package sheet turns decoded sprite sheets into individual sprite images.
//
// It sits between file handling and the detection core: images are cloned into a
// private RGBA buffer, passed through detection.FindObjects, and the resulting
// buffers are wrapped back into images that can be encoded, saved, or described in
// a YAML manifest.
package sheet

import (
	"fmt"
	"image"

	"github.com/ironsheep/sprite-tools-mcp/internal/detection"
	"github.com/ironsheep/sprite-tools-mcp/internal/imaging"
)

// Sprite is one object cut out of a sheet.
type Sprite struct {
	// Index is the sprite's position in discovery order, starting at 0.
	Index int `json:"index"`

	// Bounds is the inclusive bounding box in sheet coordinates.
	Bounds detection.Bounds `json:"bounds"`

	// Width and Height are the dimensions of Image.
	Width  int `json:"width"`
	Height int `json:"height"`

	// PixelCount is the number of sheet pixels that belong to the sprite. It is at
	// most Width*Height; the rest of Image is transparent.
	PixelCount int `json:"pixel_count"`

	// Image holds the sprite's pixels, cropped to Bounds.
	Image *image.NRGBA `json:"-"`
}

// Result is the outcome of extracting sprites from one sheet.
type Result struct {
	// Width and Height are the sheet dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Cleaned is a copy of the sheet with every sprite pixel set to
	// detection.EraseColor. The source image is never modified.
	Cleaned *image.NRGBA `json:"-"`

	// Sprites are in discovery order: row-major by each sprite's first pixel.
	Sprites []Sprite `json:"sprites"`
}

// Extract finds every sprite in img.
//
// The image is first copied into a non-premultiplied RGBA buffer, so the caller's
// image (which may be shared through an ImageCache) is left untouched. A sheet
// with no foreground pixels yields an empty Sprites slice and a Cleaned copy
// identical to the input.
//
// Returns an error wrapping detection.ErrInvalidInput for an empty image, or
// detection.ErrTooLarge if the pixel buffer cannot be addressed.
func Extract(img image.Image) (*Result, error) {
	canvas := imaging.ToNRGBA(img)
	width, height := canvas.Rect.Dx(), canvas.Rect.Dy()

	objects, err := detection.FindObjects(canvas.Pix, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to extract sprites: %w", err)
	}

	sprites := make([]Sprite, len(objects))
	for i, obj := range objects {
		w, h := obj.Bounds.Width(), obj.Bounds.Height()
		sprites[i] = Sprite{
			Index:      i,
			Bounds:     obj.Bounds,
			Width:      w,
			Height:     h,
			PixelCount: obj.PixelCount,
			Image:      imaging.WrapNRGBA(obj.Image, w, h),
		}
	}

	return &Result{
		Width:   width,
		Height:  height,
		Cleaned: canvas,
		Sprites: sprites,
	}, nil
}
