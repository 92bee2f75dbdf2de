package awd

import (
	"fmt"

	"awd-inspect/internal/mathutil"
)

// HeaderSize is the fixed size of the file header. Blocks start right after it.
const HeaderSize = 12

// BlockPreambleSize is the size of the id/ns/type/length prefix of every block.
const BlockPreambleSize = 10

// Magic is the expected file signature.
const Magic = "AWD"

// Compression identifies the file-level compression of the body.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionDeflate
	CompressionLZMA
)

// Known reports whether c is one of the enumerated modes.
func (c Compression) Known() bool { return c <= CompressionLZMA }

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "uncompressed"
	case CompressionDeflate:
		return "deflate (file-level)"
	case CompressionLZMA:
		return "lzma (file-level)"
	default:
		return fmt.Sprintf("<error> %#x", uint8(c))
	}
}

// Header is the decoded 12-byte file header.
type Header struct {
	Magic       string
	Major       uint8
	Minor       uint8
	Flags       uint16
	Compression Compression
	BodyLength  uint32
}

// BlockType is the type code of a top-level block.
type BlockType uint8

const (
	BlockMeshInstance  BlockType = 3
	BlockMeshData      BlockType = 4
	BlockSkeleton      BlockType = 60
	BlockBitmapTexture BlockType = 82
)

// Known reports whether t has a decoder.
func (t BlockType) Known() bool {
	switch t {
	case BlockMeshInstance, BlockMeshData, BlockSkeleton, BlockBitmapTexture:
		return true
	}
	return false
}

func (t BlockType) String() string {
	switch t {
	case BlockMeshInstance:
		return "MeshInst"
	case BlockMeshData:
		return "MeshData"
	case BlockSkeleton:
		return "Skeleton"
	case BlockBitmapTexture:
		return "BitmapTex"
	default:
		return fmt.Sprintf("<error> %#x", uint8(t))
	}
}

// Block is one top-level record of the body.
type Block struct {
	Offset    int // absolute offset of the preamble
	ID        uint32
	Namespace uint8
	Type      BlockType
	Length    uint32

	// Body is *MeshInstance, *MeshData, *Skeleton or *BitmapTexture when the
	// block was dispatched and decoded, nil otherwise.
	Body any
	// Err is set when the payload could not be decoded.
	Err error
}

// Property is one key/value pair of a property table. Value is opaque.
type Property struct {
	Key   uint16
	Value []byte
}

// Properties is a property table in file order. Keys may repeat.
type Properties struct {
	Length  uint32
	Entries []Property
}

// UserAttributes is an opaque attribute blob; only its size is surfaced.
// Present is false when the structure ended before the attributes.
type UserAttributes struct {
	Present bool
	Length  uint32
}

// MeshInstance is a type 3 block: a placed reference to mesh data.
type MeshInstance struct {
	ParentID   uint32
	Transform  mathutil.Mat4
	DataID     uint32
	Attributes UserAttributes
}

// MeshData is a type 4 block.
type MeshData struct {
	Name       string
	NumSubs    uint16
	Properties Properties
	SubMeshes  []SubMesh
	Attributes UserAttributes
}

// SubMesh groups the streams sharing one material.
type SubMesh struct {
	MaterialID uint32
	Length     uint32
	Streams    []Stream
}

// StreamType is the element kind of a sub-mesh stream.
type StreamType uint8

const (
	StreamVertex   StreamType = 1
	StreamTriangle StreamType = 2
	StreamUV       StreamType = 3
	StreamWeights  StreamType = 7
)

// Known reports whether the element format of t is understood.
func (t StreamType) Known() bool {
	switch t {
	case StreamVertex, StreamTriangle, StreamUV, StreamWeights:
		return true
	}
	return false
}

// ElemSize returns the encoded size of one element, or 0 if t is unrecognized.
func (t StreamType) ElemSize() int {
	switch t {
	case StreamVertex, StreamUV, StreamWeights:
		return 4
	case StreamTriangle:
		return 2
	}
	return 0
}

func (t StreamType) String() string {
	switch t {
	case StreamVertex:
		return "VERTEX"
	case StreamTriangle:
		return "TRIANGLE"
	case StreamUV:
		return "UV"
	case StreamWeights:
		return "WEIGHTS"
	default:
		return fmt.Sprintf("<error> %#x", uint8(t))
	}
}

// Stream is a typed run of elements. Exactly one of Floats or Indices is
// populated for recognized types; neither for unrecognized ones.
type Stream struct {
	Type    StreamType
	Length  uint32
	Floats  []float32
	Indices []uint16
}

// Skeleton is a type 60 block.
type Skeleton struct {
	Name       string
	NumJoints  uint32
	Properties Properties
	Joints     []Joint
	Attributes UserAttributes
}

// JointReservedSize is the undecoded bind-pose tail of each joint record.
const JointReservedSize = 128

// Joint is one skeleton joint; ParentID refers to another joint's ID.
type Joint struct {
	ID       uint32
	ParentID uint32
	Name     string
}

// TextureStorage says where a bitmap texture's pixels live.
type TextureStorage uint8

const (
	TextureExternal TextureStorage = 0
	TextureEmbedded TextureStorage = 1
)

func (s TextureStorage) String() string {
	switch s {
	case TextureExternal:
		return "external"
	case TextureEmbedded:
		return "embedded"
	default:
		return fmt.Sprintf("<error> %#x", uint8(s))
	}
}

// BitmapTexture is a type 82 block. Data is a URL for external storage and
// an image file for embedded storage.
type BitmapTexture struct {
	Name       string
	Storage    TextureStorage
	Data       []byte
	Properties Properties
	Attributes UserAttributes
}
