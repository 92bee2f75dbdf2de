package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"awd-inspect/internal/batch"
	"awd-inspect/internal/config"
)

func main() {
	// CLI flags
	blocks := pflag.BoolP("blocks", "b", false, "List every block")
	geometry := pflag.BoolP("geometry", "g", false, "Decode mesh data blocks")
	scene := pflag.BoolP("scene", "s", false, "Decode mesh instance blocks")
	animation := pflag.BoolP("animation", "a", false, "Decode skeleton blocks")
	textures := pflag.BoolP("textures", "t", false, "Decode bitmap texture blocks")
	all := pflag.BoolP("all", "x", false, "Decode everything")
	workers := pflag.IntP("workers", "j", 0, "Files decoded in parallel (default: NumCPU)")
	configFile := pflag.StringP("config", "c", "", "Path to a JSON config file (comments allowed)")
	verbose := pflag.BoolP("verbose", "v", false, "Debug logging on stderr")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE...\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	files := pflag.Args()
	if len(files) == 0 {
		pflag.Usage()
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

	var include []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"blocks", *blocks},
		{"geometry", *geometry},
		{"scene", *scene},
		{"animation", *animation},
		{"textures", *textures},
		{"all", *all},
	} {
		if f.on {
			include = append(include, f.name)
		}
	}

	cfg.Resolve(config.Flags{Include: include, Workers: *workers})
	filter, err := cfg.Filter()
	if err != nil {
		logger.Error("invalid include filter", "error", err)
		os.Exit(1)
	}
	logger.Debug("starting", "files", len(files), "workers", cfg.Workers, "include", cfg.Include)

	results := batch.Run(batch.Config{Workers: cfg.Workers}, files, func(path string) batch.Result {
		return batch.Inspect(path, filter)
	})

	// Each file is aborted on its own failure; the rest still run.
	failed := 0
	for _, r := range results {
		os.Stdout.Write(r.Output)
		if r.Err != nil {
			failed++
			logger.Error("decode failed", "path", r.Path, "error", r.Err)
			continue
		}
		logger.Debug("decoded", "path", r.Path, "bytes", len(r.Output))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
