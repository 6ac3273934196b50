package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToNRGBA returns a non-premultiplied 8-bit copy of img with its origin at (0,0)
// and rows packed with no padding, so that Pix is a plain row-major RGBA buffer of
// width*height*4 bytes.
//
// The copy is always fresh; mutating it never affects img or the image cache.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// WrapNRGBA views a row-major RGBA buffer as an image without copying it.
// The caller must ensure len(pix) == width*height*4.
func WrapNRGBA(pix []uint8, width, height int) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
