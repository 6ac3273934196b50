package sheet

import (
	"path/filepath"

	"github.com/ironsheep/sprite-tools-mcp/internal/imaging"
)

// SpriteRecord is the JSON view of one sprite returned to MCP clients.
//
// Bounds are inclusive: a sprite occupying a single pixel has Left == Right.
type SpriteRecord struct {
	Index      int `json:"index"`
	Left       int `json:"left"`
	Top        int `json:"top"`
	Right      int `json:"right"`
	Bottom     int `json:"bottom"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	PixelCount int `json:"pixel_count"`

	// File is the absolute path of the saved PNG, when files were written.
	File string `json:"file,omitempty"`

	// Image is the sprite as base64 PNG, when images were requested.
	Image *imaging.EncodedImage `json:"image,omitempty"`
}

// Report is the JSON view of a Result.
type Report struct {
	Source  string         `json:"source"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Count   int            `json:"count"`
	Sprites []SpriteRecord `json:"sprites"`

	Cleaned      *imaging.EncodedImage `json:"cleaned,omitempty"`
	CleanedFile  string                `json:"cleaned_file,omitempty"`
	ManifestFile string                `json:"manifest_file,omitempty"`
}

// ReportOptions selects which images are embedded in a Report.
type ReportOptions struct {
	IncludeImages  bool    // embed each sprite as base64 PNG
	IncludeCleaned bool    // embed the cleaned sheet as base64 PNG
	Scale          float64 // preview scale for embedded sprites; the cleaned sheet is never scaled
}

// Report builds the JSON view of r. Embedded images are encoded on demand, so a
// report with neither option set only carries coordinates.
func (r *Result) Report(source string, opts ReportOptions) (*Report, error) {
	rep := &Report{
		Source:  source,
		Width:   r.Width,
		Height:  r.Height,
		Count:   len(r.Sprites),
		Sprites: make([]SpriteRecord, 0, len(r.Sprites)),
	}

	for _, s := range r.Sprites {
		rec := SpriteRecord{
			Index:      s.Index,
			Left:       s.Bounds.Left,
			Top:        s.Bounds.Top,
			Right:      s.Bounds.Right,
			Bottom:     s.Bounds.Bottom,
			Width:      s.Width,
			Height:     s.Height,
			PixelCount: s.PixelCount,
		}
		if opts.IncludeImages {
			enc, err := imaging.EncodePNG(s.Image, opts.Scale)
			if err != nil {
				return nil, err
			}
			rec.Image = enc
		}
		rep.Sprites = append(rep.Sprites, rec)
	}

	if opts.IncludeCleaned {
		enc, err := imaging.EncodePNG(r.Cleaned, 1.0)
		if err != nil {
			return nil, err
		}
		rep.Cleaned = enc
	}

	return rep, nil
}

// AttachFiles records where WriteFiles put each output, as paths joined to dir.
// manifestFile is empty when no manifest was written.
func (rep *Report) AttachFiles(dir string, m *Manifest, manifestFile string) {
	for i := range rep.Sprites {
		if i < len(m.Sprites) {
			rep.Sprites[i].File = filepath.Join(dir, m.Sprites[i].File)
		}
	}
	if m.Cleaned != "" {
		rep.CleanedFile = filepath.Join(dir, m.Cleaned)
	}
	rep.ManifestFile = manifestFile
}
