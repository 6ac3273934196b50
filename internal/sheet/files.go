package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/sprite-tools-mcp/internal/config"
	"github.com/ironsheep/sprite-tools-mcp/internal/imaging"
)

// Manifest describes the files written for one sheet.
type Manifest struct {
	Source  string          `yaml:"source" json:"source"`
	Width   int             `yaml:"width" json:"width"`
	Height  int             `yaml:"height" json:"height"`
	Cleaned string          `yaml:"cleaned,omitempty" json:"cleaned,omitempty"`
	Sprites []ManifestEntry `yaml:"sprites" json:"sprites"`
}

// ManifestEntry records where one sprite came from and where it was written.
type ManifestEntry struct {
	File       string `yaml:"file" json:"file"`
	Left       int    `yaml:"left" json:"left"`
	Top        int    `yaml:"top" json:"top"`
	Right      int    `yaml:"right" json:"right"`
	Bottom     int    `yaml:"bottom" json:"bottom"`
	Width      int    `yaml:"width" json:"width"`
	Height     int    `yaml:"height" json:"height"`
	PixelCount int    `yaml:"pixel_count" json:"pixel_count"`
}

// BaseName returns the file name of path without directory or extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// WriteFiles saves every sprite of r as a PNG in dir, named with
// cfg.SpriteName(base, index). When cfg.WriteCleaned is set the cleaned sheet is
// saved as cfg.CleanedName(base), and when cfg.WriteManifest is set the manifest
// is saved as <base>.yaml.
//
// The directory is created if needed. Existing files with the same names are
// replaced. The returned manifest lists the written files relative to dir.
func (r *Result) WriteFiles(dir, source string, cfg *config.Config) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := BaseName(source)
	m := &Manifest{
		Source:  source,
		Width:   r.Width,
		Height:  r.Height,
		Sprites: make([]ManifestEntry, 0, len(r.Sprites)),
	}

	for _, s := range r.Sprites {
		name := cfg.SpriteName(base, s.Index)
		if err := imaging.SavePNG(filepath.Join(dir, name), s.Image); err != nil {
			return nil, err
		}
		m.Sprites = append(m.Sprites, ManifestEntry{
			File:       name,
			Left:       s.Bounds.Left,
			Top:        s.Bounds.Top,
			Right:      s.Bounds.Right,
			Bottom:     s.Bounds.Bottom,
			Width:      s.Width,
			Height:     s.Height,
			PixelCount: s.PixelCount,
		})
	}

	if cfg.WriteCleaned {
		m.Cleaned = cfg.CleanedName(base)
		if err := imaging.SavePNG(filepath.Join(dir, m.Cleaned), r.Cleaned); err != nil {
			return nil, err
		}
	}

	if cfg.WriteManifest {
		if err := WriteManifest(m, filepath.Join(dir, base+".yaml")); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// WriteManifest writes a manifest to a YAML file.
func WriteManifest(m *Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest reads a manifest from a YAML file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}
