package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/tidwall/jsonc"

	"awd-inspect/internal/awd"
)

// Config holds settings shared by the inspection tools.
type Config struct {
	// Include lists block categories to decode: blocks, geometry, scene,
	// animation, textures, all.
	Include []string `json:"include"`
	Workers int      `json:"workers"`

	// Texture export
	TextureDir    string `json:"texture_dir"`
	ThumbnailSize int    `json:"thumbnail_size"`
}

// Load reads a JSON config file and returns Config. Comments and trailing
// commas are allowed. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Include       []string
	Workers       int
	TextureDir    string
	ThumbnailSize int
}

// Resolve applies flag overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if len(flags.Include) > 0 {
		c.Include = flags.Include
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.ThumbnailSize > 0 {
		c.ThumbnailSize = flags.ThumbnailSize
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TextureDir == "" {
		c.TextureDir = "textures"
	}
	if c.ThumbnailSize < 0 {
		c.ThumbnailSize = 0
	}
}

// Filter converts Include into a decode filter.
func (c *Config) Filter() (awd.Include, error) {
	inc, err := awd.ParseInclude(c.Include)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return inc, nil
}
