package sheet

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/sprite-tools-mcp/internal/detection"
)

// createSheet draws filled rectangles of the given colors onto a white sheet.
// Each rect uses image.Rectangle's exclusive Max.
func createSheet(width, height int, rects map[image.Rectangle]color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for r, c := range rects {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

func TestExtract(t *testing.T) {
	sheet := createSheet(20, 10, map[image.Rectangle]color.Color{
		image.Rect(2, 1, 5, 4):   color.RGBA{0, 0, 0, 255},
		image.Rect(10, 6, 16, 8): color.RGBA{100, 0, 50, 255},
	})

	result, err := Extract(sheet)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if result.Width != 20 || result.Height != 10 {
		t.Errorf("sheet size: got %dx%d, want 20x10", result.Width, result.Height)
	}
	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(result.Sprites))
	}

	tests := []struct {
		bounds     detection.Bounds
		w, h       int
		pixelCount int
		c          color.NRGBA
	}{
		{detection.Bounds{Left: 2, Top: 1, Right: 4, Bottom: 3}, 3, 3, 9, color.NRGBA{0, 0, 0, 255}},
		{detection.Bounds{Left: 10, Top: 6, Right: 15, Bottom: 7}, 6, 2, 12, color.NRGBA{100, 0, 50, 255}},
	}
	for i, tt := range tests {
		s := result.Sprites[i]
		if s.Index != i {
			t.Errorf("sprite %d: Index %d", i, s.Index)
		}
		if s.Bounds != tt.bounds {
			t.Errorf("sprite %d bounds: got %+v, want %+v", i, s.Bounds, tt.bounds)
		}
		if s.Width != tt.w || s.Height != tt.h {
			t.Errorf("sprite %d size: got %dx%d, want %dx%d", i, s.Width, s.Height, tt.w, tt.h)
		}
		if s.Image.Bounds() != image.Rect(0, 0, tt.w, tt.h) {
			t.Errorf("sprite %d image bounds: got %v", i, s.Image.Bounds())
		}
		if s.PixelCount != tt.pixelCount {
			t.Errorf("sprite %d PixelCount: got %d, want %d", i, s.PixelCount, tt.pixelCount)
		}
		if got := s.Image.NRGBAAt(0, 0); got != tt.c {
			t.Errorf("sprite %d color: got %v, want %v", i, got, tt.c)
		}
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if got := result.Cleaned.NRGBAAt(x, y); got != (color.NRGBA{255, 255, 255, 255}) {
				t.Fatalf("cleaned pixel (%d,%d): got %v, want white", x, y, got)
			}
		}
	}
}

func TestExtract_LeavesSourceUntouched(t *testing.T) {
	sheet := createSheet(6, 6, map[image.Rectangle]color.Color{
		image.Rect(1, 1, 3, 3): color.Black,
	})

	if _, err := Extract(sheet); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if got := sheet.RGBAAt(1, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("source image was modified: (1,1) is %v", got)
	}
}

func TestExtract_SubImage(t *testing.T) {
	sheet := createSheet(10, 10, map[image.Rectangle]color.Color{
		image.Rect(6, 6, 8, 7): color.Black,
	})
	sub := sheet.SubImage(image.Rect(5, 5, 10, 10))

	result, err := Extract(sub)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d", len(result.Sprites))
	}
	want := detection.Bounds{Left: 1, Top: 1, Right: 2, Bottom: 1}
	if result.Sprites[0].Bounds != want {
		t.Errorf("bounds should be relative to the sub-image: got %+v, want %+v", result.Sprites[0].Bounds, want)
	}
}

func TestExtract_TransparentPixelsAreForeground(t *testing.T) {
	// Fully transparent pixels unpremultiply to black and count as foreground,
	// matching the detection rule that ignores alpha.
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(2, 0, color.NRGBA{255, 255, 255, 255})

	result, err := Extract(img)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d", len(result.Sprites))
	}
}

func TestExtract_EmptyImage(t *testing.T) {
	_, err := Extract(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, detection.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExtract_RescanFindsNothing(t *testing.T) {
	sheet := createSheet(12, 12, map[image.Rectangle]color.Color{
		image.Rect(0, 0, 4, 4):   color.Black,
		image.Rect(5, 5, 12, 6):  color.RGBA{30, 60, 90, 255},
		image.Rect(8, 8, 10, 12): color.RGBA{128, 128, 128, 255},
	})

	first, err := Extract(sheet)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(first.Sprites) != 3 {
		t.Fatalf("expected 3 sprites, got %d", len(first.Sprites))
	}

	second, err := Extract(first.Cleaned)
	if err != nil {
		t.Fatalf("second Extract failed: %v", err)
	}
	if len(second.Sprites) != 0 {
		t.Errorf("cleaned sheet should have no sprites, got %d", len(second.Sprites))
	}
}
