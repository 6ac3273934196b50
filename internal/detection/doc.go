// Package detection finds discrete foreground objects in an RGBA pixel buffer and
// lifts each one out of the source image.
//
// The package works on a plain buffer contract rather than image.Image so that any
// host (the MCP server, the batch CLI, a game engine binding) can adapt its own image
// type at the boundary:
//
//   - Pixels are row-major, 4 bytes per pixel in R, G, B, A order
//   - len(pix) must equal width * height * 4
//   - (0, 0) is the top-left pixel, X increases rightward, Y increases downward
//
// # Algorithm Overview
//
// FindObjects runs in three phases:
//
//  1. Scan: Walk every pixel in row-major order. Each foreground pixel that no earlier
//     region has claimed seeds a new region.
//  2. Flood fill: Grow the region breadth-first across 4-connected foreground
//     neighbors, marking each claimed pixel in a visitation grid and widening the
//     region's bounding box.
//  3. Extraction: Once the scan is complete, copy each region's pixels into a tightly
//     cropped buffer and overwrite them in the source with EraseColor.
//
// Extraction never runs during the scan, so erasing one region cannot change the
// membership of another.
//
// # Background Rule
//
// A pixel is background when any of its red, green or blue channels is brighter than
// BackgroundThreshold. Alpha is ignored. The rule is fixed: light backgrounds are
// ignored and dark shapes are extracted. Since EraseColor is itself background,
// running FindObjects on its own output finds nothing.
//
// # Bounding Boxes
//
// Unlike the exclusive rectangles used by image.Rectangle, object bounds are
// inclusive on all four sides: a single-pixel object at (3, 7) has
// Left == Right == 3 and Top == Bottom == 7.
//
// # Concurrency
//
// A call owns its buffer for its whole duration and does no internal locking.
// Separate buffers may be processed concurrently from separate goroutines.
package detection
