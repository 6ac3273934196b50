package detection

import "fmt"

// visitGrid records which pixels have already been claimed by a region.
//
// A flag is never cleared once set, so each pixel belongs to at most one region
// per scan. Indexing outside the grid panics; callers check bounds first.
type visitGrid struct {
	flags  []bool
	width  int
	height int
}

func newVisitGrid(width, height int) *visitGrid {
	return &visitGrid{
		flags:  make([]bool, width*height),
		width:  width,
		height: height,
	}
}

func (g *visitGrid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("detection: grid index (%d,%d) out of range for %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

func (g *visitGrid) visited(x, y int) bool {
	return g.flags[g.index(x, y)]
}

func (g *visitGrid) markVisited(x, y int) {
	g.flags[g.index(x, y)] = true
}
