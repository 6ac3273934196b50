package sheet

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/sprite-tools-mcp/internal/config"
	"github.com/ironsheep/sprite-tools-mcp/internal/imaging"
)

// supportedExts lists the extensions CollectInputs picks up from a directory.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Summary reports the outcome of processing one input file.
type Summary struct {
	Source   string        `json:"source"`
	Sprites  int           `json:"sprites"`
	Manifest *Manifest     `json:"manifest"`
	Elapsed  time.Duration `json:"elapsed"`
}

// CollectInputs resolves path to the list of sheets to process: the file itself,
// or every supported image file directly inside the directory, sorted by name.
func CollectInputs(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	if !fi.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ExtractFile loads one sheet through cache, extracts its sprites and writes them
// to cfg.OutputDir.
func ExtractFile(cache *imaging.ImageCache, path string, cfg *config.Config) (*Summary, error) {
	start := time.Now()

	img, err := cache.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result, err := Extract(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := result.WriteFiles(cfg.OutputDir, path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Summary{
		Source:   path,
		Sprites:  len(result.Sprites),
		Manifest: m,
		Elapsed:  time.Since(start),
	}, nil
}

// ExtractFiles processes several sheets concurrently with up to cfg.Workers in
// flight; a non-positive Workers means one per CPU. Each sheet is an independent extraction; the first failure cancels any
// sheets not yet started and is returned. Summaries are in input order.
//
// Inputs whose base names collide would overwrite each other's output, so they
// are rejected before any work starts.
func ExtractFiles(ctx context.Context, paths []string, cfg *config.Config) ([]Summary, error) {
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		base := BaseName(p)
		if prev, ok := seen[base]; ok {
			return nil, fmt.Errorf("inputs %s and %s would write the same output files", prev, p)
		}
		seen[base] = p
	}

	cache := imaging.NewImageCache()
	summaries := make([]Summary, len(paths))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer cache.Evict(path)

			s, err := ExtractFile(cache, path, cfg)
			if err != nil {
				return err
			}
			if cfg.Debug {
				log.Printf("Extracted %d sprites from %s in %v", s.Sprites, path, s.Elapsed)
			}
			summaries[i] = *s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
