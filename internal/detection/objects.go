package detection

// Bounds is an inclusive bounding box in source-image pixel coordinates.
//
// All four edges belong to the box, so a one-pixel object has Left == Right and
// Top == Bottom.
type Bounds struct {
	Left   int `json:"left"`   // Leftmost column (inclusive)
	Top    int `json:"top"`    // Topmost row (inclusive)
	Right  int `json:"right"`  // Rightmost column (inclusive)
	Bottom int `json:"bottom"` // Bottommost row (inclusive)
}

// Width returns the number of columns covered by the box.
func (b Bounds) Width() int { return b.Right - b.Left + 1 }

// Height returns the number of rows covered by the box.
func (b Bounds) Height() int { return b.Bottom - b.Top + 1 }

// Contains reports whether (x, y) lies inside the box.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// Object is one detected foreground shape lifted out of the source buffer.
type Object struct {
	// Bounds is the tightest box enclosing every pixel of the object.
	Bounds Bounds `json:"bounds"`

	// PixelCount is the number of source pixels that belong to the object.
	PixelCount int `json:"pixel_count"`

	// Image holds the cropped RGBA pixels, Bounds.Width() × Bounds.Height() × 4
	// bytes in row-major order. Positions inside the box that are not part of the
	// object are left as transparent black (all zero).
	Image []uint8 `json:"-"`
}

// FindObjects locates every 4-connected group of foreground pixels in pix, cuts each
// one out into its own buffer and erases it from pix.
//
// Parameters:
//   - pix: Row-major RGBA buffer of exactly width*height*4 bytes. It is modified in
//     place: every pixel that belongs to a returned object is set to EraseColor.
//   - width, height: Image dimensions in pixels. Both must be positive.
//
// Returns:
//   - []Object: Detected objects in discovery order, which is the row-major order of
//     each object's first pixel. Empty (not nil) when the image is all background.
//   - error: Wraps ErrInvalidInput if the dimensions or buffer length are wrong, or
//     ErrTooLarge if the buffer size overflows. On error pix is untouched.
//
// # Determinism
//
// Object membership depends only on connectivity, so it does not depend on scan
// order. Only the order of the returned slice follows the scan.
func FindObjects(pix []uint8, width, height int) ([]Object, error) {
	if err := validateBuffer(len(pix), width, height); err != nil {
		return nil, err
	}

	img := &raster{pix: pix, width: width, height: height}
	regions := scanRegions(img)

	objects := make([]Object, 0, len(regions))
	for _, r := range regions {
		objects = append(objects, r.materialize(img))
	}
	return objects, nil
}

// point is a pixel coordinate. Neighbors of edge pixels may be queued with
// coordinates of -1 or width/height; they are discarded when dequeued.
type point struct {
	x, y int
}

// region accumulates the pixels of one object during flood fill.
type region struct {
	bounds  Bounds
	members []point
}

func newRegion(seedX, seedY int) *region {
	return &region{
		bounds: Bounds{Left: seedX, Top: seedY, Right: seedX, Bottom: seedY},
	}
}

// add records (x, y) as a member and widens the bounds to include it.
func (r *region) add(x, y int) {
	r.members = append(r.members, point{x: x, y: y})
	r.bounds.Left = min(r.bounds.Left, x)
	r.bounds.Top = min(r.bounds.Top, y)
	r.bounds.Right = max(r.bounds.Right, x)
	r.bounds.Bottom = max(r.bounds.Bottom, y)
}

// materialize copies the region's pixels into a new cropped buffer and erases them
// from img. Regions are disjoint, so every source pixel is touched at most once
// across all regions.
func (r *region) materialize(img *raster) Object {
	crop := newRaster(r.bounds.Width(), r.bounds.Height())
	for _, p := range r.members {
		crop.set(p.x-r.bounds.Left, p.y-r.bounds.Top, img.at(p.x, p.y))
		img.set(p.x, p.y, EraseColor)
	}
	return Object{
		Bounds:     r.bounds,
		PixelCount: len(r.members),
		Image:      crop.pix,
	}
}

// scanRegions walks img in row-major order and flood fills every unclaimed
// foreground pixel. Background pixels are never marked visited.
func scanRegions(img *raster) []*region {
	grid := newVisitGrid(img.width, img.height)
	regions := make([]*region, 0)

	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			if grid.visited(x, y) || IsBackground(img.at(x, y)) {
				continue
			}
			regions = append(regions, extractRegion(img, grid, x, y))
		}
	}

	return regions
}

// extractRegion claims every foreground pixel 4-connected to (startX, startY).
//
// The seed must be in bounds, unvisited and foreground. Neighbors are queued
// without checks; bounds, visitation and color are tested when a coordinate is
// dequeued, bounds first so that nothing is indexed out of range.
func extractRegion(img *raster, grid *visitGrid, startX, startY int) *region {
	r := newRegion(startX, startY)
	queue := []point{{x: startX, y: startY}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if !img.contains(p.x, p.y) || grid.visited(p.x, p.y) || IsBackground(img.at(p.x, p.y)) {
			continue
		}

		grid.markVisited(p.x, p.y)
		r.add(p.x, p.y)

		queue = append(queue,
			point{x: p.x - 1, y: p.y},
			point{x: p.x + 1, y: p.y},
			point{x: p.x, y: p.y - 1},
			point{x: p.x, y: p.y + 1},
		)
	}

	return r
}
