package detection

import "testing"

func TestVisitGrid_MarkVisited(t *testing.T) {
	g := newVisitGrid(3, 2)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if g.visited(x, y) {
				t.Fatalf("new grid: (%d,%d) already visited", x, y)
			}
		}
	}

	g.markVisited(2, 1)

	if !g.visited(2, 1) {
		t.Error("(2,1) should be visited")
	}
	if g.visited(1, 1) || g.visited(2, 0) {
		t.Error("marking (2,1) should not affect neighbors")
	}

	// Row-major layout: (2,1) is the last flag.
	if !g.flags[len(g.flags)-1] {
		t.Error("(2,1) should map to index y*width+x")
	}
}

func TestVisitGrid_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"x past width", 3, 0},
		{"y past height", 0, 2},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newVisitGrid(3, 2)
			defer func() {
				if recover() == nil {
					t.Errorf("visited(%d,%d) should panic", tt.x, tt.y)
				}
			}()
			g.visited(tt.x, tt.y)
		})
	}
}
