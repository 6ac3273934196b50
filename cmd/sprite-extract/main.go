package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ironsheep/sprite-tools-mcp/internal/config"
	"github.com/ironsheep/sprite-tools-mcp/internal/sheet"
)

// Version information - set by ldflags during build
var Version = "dev"

func main() {
	inputPtr := flag.String("input", "", "Sprite sheet, or a directory of sheets (required)")
	outputPtr := flag.String("output", "", "Output directory (default from config: sprites)")
	configPtr := flag.String("config", "sprite-extract.yaml", "YAML config file; missing file means defaults")
	workersPtr := flag.Int("workers", 0, "Sheets processed in parallel (default from config: number of CPUs)")
	noCleanedPtr := flag.Bool("no-cleaned", false, "Do not write the sheet with sprites erased")
	manifestPtr := flag.Bool("manifest", false, "Write a YAML manifest of sprite bounds per sheet")
	debugPtr := flag.Bool("debug", false, "Log per-sheet timing")
	versionPtr := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *versionPtr {
		fmt.Printf("sprite-extract %s\n", Version)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *inputPtr == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Flags override the config file only when given.
	if *outputPtr != "" {
		cfg.OutputDir = *outputPtr
	}
	if *workersPtr > 0 {
		cfg.Workers = *workersPtr
	}
	if *noCleanedPtr {
		cfg.WriteCleaned = false
	}
	if *manifestPtr {
		cfg.WriteManifest = true
	}
	if *debugPtr {
		cfg.Debug = true
	}

	paths, err := sheet.CollectInputs(*inputPtr)
	if err != nil {
		log.Fatalf("Input error: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No images found in %s", *inputPtr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	summaries, err := sheet.ExtractFiles(ctx, paths, cfg)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	total := 0
	for _, s := range summaries {
		fmt.Printf("%s: %d sprites\n", s.Source, s.Sprites)
		total += s.Sprites
	}
	fmt.Printf("Extracted %d sprites from %d sheets into %s in %v\n",
		total, len(summaries), cfg.OutputDir, time.Since(start).Round(time.Millisecond))
}
