// Package imaging adapts decoded images to and from the plain RGBA buffers used by
// sprite detection, and provides the file-level helpers around it.
//
// The detection package never sees an image.Image. This package owns that boundary:
//
//   - ToNRGBA copies any image into a tightly packed, non-premultiplied RGBA buffer
//     with its origin at (0,0)
//   - WrapNRGBA turns a buffer produced by detection back into an image.Image
//     without copying
//   - EncodePNG and SavePNG serialize results for the MCP server and the CLI
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the image's
// top-left corner, even for sub-images whose Bounds().Min is not (0,0).
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Cached images are shared and must not be
// mutated; use ToNRGBA to get a private copy before modifying pixels.
//
// # Formats
//
// Loading supports PNG, JPEG, GIF, BMP, TIFF and WebP. Output is always PNG,
// which preserves the transparency of extracted sprites.
package imaging
