package awd

import (
	"fmt"
	"strings"
)

// Include selects which parts of a file are decoded. Bits combine.
type Include uint16

const (
	IncludeBlocks Include = 1 << iota
	IncludeGeometry
	IncludeScene
	IncludeAnimation
	IncludeTextures

	IncludeAll Include = 0xffff
)

var includeNames = map[string]Include{
	"blocks":    IncludeBlocks,
	"geometry":  IncludeGeometry,
	"scene":     IncludeScene,
	"animation": IncludeAnimation,
	"textures":  IncludeTextures,
	"all":       IncludeAll,
}

// ParseInclude combines category names ("geometry", "scene", ...) into a filter.
func ParseInclude(names []string) (Include, error) {
	var inc Include
	for _, n := range names {
		bit, ok := includeNames[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("awd: unknown include category %q", n)
		}
		inc |= bit
	}
	return inc.normalize(), nil
}

// normalize makes every block category imply the block listing.
func (i Include) normalize() Include {
	if i&^IncludeBlocks != 0 {
		i |= IncludeBlocks
	}
	return i
}

func (i Include) Has(bit Include) bool { return i&bit == bit }

// Dispatches reports whether blocks of type t are decoded under i.
// Unknown types are never dispatched.
func (i Include) Dispatches(t BlockType) bool {
	switch t {
	case BlockMeshInstance:
		return i.Has(IncludeScene)
	case BlockMeshData:
		return i.Has(IncludeGeometry)
	case BlockSkeleton:
		return i.Has(IncludeAnimation)
	case BlockBitmapTexture:
		return i.Has(IncludeTextures)
	}
	return false
}
