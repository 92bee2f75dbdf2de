package awd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// File is the decoded view of one AWD file.
type File struct {
	Header Header
	Blocks []Block
	// End is the cursor after the last block stepped over: HeaderSize plus
	// the sum of 10 + length over Blocks, excluding a truncated final
	// block. It never exceeds the buffer length.
	End int
	// Size is the length of the decoded buffer, header included.
	Size int
}

// BodyMismatch reports whether the header's body length disagrees with the
// bytes that follow the header.
func (f *File) BodyMismatch() bool {
	return HeaderSize+int64(f.Header.BodyLength) != int64(f.Size)
}

// Parse reads an AWD file from disk and decodes it.
func Parse(path string, include Include) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("awd: read %s: %w", path, err)
	}
	return Decode(raw, include)
}

// Decode walks the header and block sequence of data. On a structural
// failure it returns the file decoded so far together with the error; the
// failing block, if any, is the last element of Blocks with Err set.
func Decode(data []byte, include Include) (*File, error) {
	include = include.normalize()

	h, n, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	f := &File{Header: h, End: n, Size: len(data)}
	if !include.Has(IncludeBlocks) {
		return f, nil
	}

	for f.End < len(data) {
		if rest := len(data) - f.End; rest < BlockPreambleSize {
			return f, &DecodeError{Offset: f.End, What: "block preamble",
				Err: fmt.Errorf("%w: %d trailing bytes, preamble needs %d", ErrTruncated, rest, BlockPreambleSize)}
		}
		b, err := nextBlock(data, f.End, include)
		f.Blocks = append(f.Blocks, b)
		// A truncated block is reported but never stepped over.
		if !errors.Is(err, ErrTruncated) {
			f.End += BlockPreambleSize + int(b.Length)
		}
		if err != nil {
			return f, err
		}
	}
	return f, nil
}

func isTruncated(b Block, size int) bool {
	return uint64(b.Offset)+BlockPreambleSize+uint64(b.Length) > uint64(size)
}

// nextBlock reads the block at off and, if include selects its type,
// decodes the payload. The caller guarantees a full preamble at off.
func nextBlock(data []byte, off int, include Include) (Block, error) {
	b := Block{Offset: off}
	rest := len(data) - off
	p := data[off:]
	b.ID = binary.BigEndian.Uint32(p[0:4])
	b.Namespace = p[4]
	b.Type = BlockType(p[5])
	b.Length = binary.BigEndian.Uint32(p[6:10])

	if isTruncated(b, len(data)) {
		b.Err = &DecodeError{Offset: off, What: "block " + b.Type.String(),
			Err: fmt.Errorf("%w: declares %d payload bytes, %d remain", ErrTruncated, b.Length, rest-BlockPreambleSize)}
		return b, b.Err
	}
	if !include.Dispatches(b.Type) {
		return b, nil
	}

	start := off + BlockPreambleSize
	payload := data[start : start+int(b.Length)]
	switch b.Type {
	case BlockMeshInstance:
		b.Body, b.Err = decodeMeshInstance(payload, start)
	case BlockMeshData:
		b.Body, b.Err = decodeMeshData(payload, start)
	case BlockSkeleton:
		b.Body, b.Err = decodeSkeleton(payload, start)
	case BlockBitmapTexture:
		b.Body, b.Err = decodeBitmapTexture(payload, start)
	}
	return b, b.Err
}
