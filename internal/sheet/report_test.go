package sheet

import (
	"encoding/json"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestReport(t *testing.T) {
	sheet := createSheet(8, 8, map[image.Rectangle]color.Color{
		image.Rect(1, 1, 3, 2): color.Black,
		image.Rect(5, 5, 6, 8): color.Black,
	})
	result, err := Extract(sheet)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	rep, err := result.Report("sheet.png", ReportOptions{IncludeImages: true, Scale: 2})
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if rep.Count != 2 || len(rep.Sprites) != 2 {
		t.Fatalf("Count: got %d (%d records), want 2", rep.Count, len(rep.Sprites))
	}

	first := rep.Sprites[0]
	if first.Left != 1 || first.Top != 1 || first.Right != 2 || first.Bottom != 1 {
		t.Errorf("first bounds: got (%d,%d,%d,%d)", first.Left, first.Top, first.Right, first.Bottom)
	}
	if first.Image == nil {
		t.Fatal("IncludeImages should embed sprite images")
	}
	if first.Image.Width != 4 || first.Image.Height != 2 {
		t.Errorf("scaled preview: got %dx%d, want 4x2", first.Image.Width, first.Image.Height)
	}
	if rep.Cleaned != nil {
		t.Error("cleaned image should not be embedded unless requested")
	}
}

func TestReport_CoordinatesOnly(t *testing.T) {
	sheet := createSheet(4, 4, map[image.Rectangle]color.Color{
		image.Rect(0, 0, 1, 1): color.Black,
	})
	result, err := Extract(sheet)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	rep, err := result.Report("s.png", ReportOptions{})
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	sprites := decoded["sprites"].([]interface{})
	rec := sprites[0].(map[string]interface{})
	if _, ok := rec["image"]; ok {
		t.Error("image should be omitted when not requested")
	}
	if _, ok := decoded["cleaned"]; ok {
		t.Error("cleaned should be omitted when not requested")
	}
}

func TestReport_EmptySheetHasEmptyList(t *testing.T) {
	result, err := Extract(createSheet(3, 3, nil))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	rep, err := result.Report("blank.png", ReportOptions{IncludeCleaned: true})
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	data, _ := json.Marshal(rep)
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if list, ok := decoded["sprites"].([]interface{}); !ok || len(list) != 0 {
		t.Errorf("sprites should be an empty JSON array, got %v", decoded["sprites"])
	}
	if rep.Cleaned == nil || rep.Cleaned.Width != 3 {
		t.Error("cleaned sheet should be embedded at full size")
	}
}

func TestAttachFiles(t *testing.T) {
	rep := &Report{Sprites: []SpriteRecord{{Index: 0}, {Index: 1}}}
	m := &Manifest{
		Cleaned: "a_cleaned.png",
		Sprites: []ManifestEntry{{File: "a_000.png"}, {File: "a_001.png"}},
	}

	rep.AttachFiles("/out", m, "/out/a.yaml")

	if rep.Sprites[1].File != filepath.Join("/out", "a_001.png") {
		t.Errorf("File: got %s", rep.Sprites[1].File)
	}
	if rep.CleanedFile != filepath.Join("/out", "a_cleaned.png") {
		t.Errorf("CleanedFile: got %s", rep.CleanedFile)
	}
	if rep.ManifestFile != "/out/a.yaml" {
		t.Errorf("ManifestFile: got %s", rep.ManifestFile)
	}
}
