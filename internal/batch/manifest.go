package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one exported texture in the output manifest.
type ManifestEntry struct {
	Source  string `json:"source"`
	BlockID uint32 `json:"block_id"`
	Name    string `json:"name"`
	Format  string `json:"format"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Image   string `json:"image"`
}

// WriteManifest writes the manifest JSON to path.
func WriteManifest(path string, entries []ManifestEntry) error {
	if entries == nil {
		entries = []ManifestEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
