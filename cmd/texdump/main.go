package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"awd-inspect/internal/batch"
	"awd-inspect/internal/config"
)

func main() {
	outputDir := pflag.StringP("output", "o", "", "Output directory (default: textures)")
	thumb := pflag.IntP("thumbnail", "t", 0, "Shrink textures so the longer side fits N pixels (default: full size)")
	workers := pflag.IntP("workers", "j", 0, "Files processed in parallel (default: NumCPU)")
	configFile := pflag.StringP("config", "c", "", "Path to a JSON config file (comments allowed)")
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	files := pflag.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE...\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("loading config", "error", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Workers:       *workers,
		TextureDir:    *outputDir,
		ThumbnailSize: *thumb,
	})

	opts := batch.ExportOptions{OutDir: cfg.TextureDir, ThumbnailSize: cfg.ThumbnailSize}
	results := batch.Run(batch.Config{Workers: cfg.Workers}, files, func(path string) batch.Result {
		return batch.ExportTextures(path, opts)
	})

	var entries []batch.ManifestEntry
	errors := 0
	for _, r := range results {
		os.Stdout.Write(r.Output)
		entries = append(entries, r.Entries...)
		if r.Err != nil {
			errors++
			logger.Error("export failed", "path", r.Path, "error", r.Err)
		}
	}

	if err := os.MkdirAll(cfg.TextureDir, 0755); err != nil {
		logger.Error("creating output directory", "error", err)
		os.Exit(1)
	}
	manifestPath := filepath.Join(cfg.TextureDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, entries); err != nil {
		logger.Error("manifest write failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("\n%d texture(s) exported, manifest: %s\n", len(entries), manifestPath)

	if errors > 0 {
		fmt.Printf("Done with %d error(s).\n", errors)
		os.Exit(1)
	}
}
