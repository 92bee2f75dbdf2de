package awd

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// reader is a big-endian cursor over one structure's bytes.
// base is the absolute file offset of data[0], used only for diagnostics.
type reader struct {
	data []byte
	off  int
	base int
}

func newReader(data []byte, base int) *reader {
	return &reader{data: data, base: base}
}

func (r *reader) remaining() int { return len(r.data) - r.off }

// pos returns the absolute file offset of the cursor.
func (r *reader) pos() int { return r.base + r.off }

func (r *reader) errAt(off int, what string, err error) error {
	return &DecodeError{Offset: r.base + off, What: what, Err: err}
}

// end fails if any of the structure's declared bytes were left unread.
func (r *reader) end(what string) error {
	if n := r.remaining(); n > 0 {
		return r.errAt(r.off, what, fmt.Errorf("%w: %d unread bytes", ErrLengthMismatch, n))
	}
	return nil
}

// take returns the next n bytes and advances past them.
func (r *reader) take(n int, what string) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, r.errAt(r.off, what,
			fmt.Errorf("%w: need %d bytes, %d remain", ErrOutOfBounds, n, r.remaining()))
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) skip(n int, what string) error {
	_, err := r.take(n, what)
	return err
}

func (r *reader) u8(what string) (uint8, error) {
	b, err := r.take(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16(what string) (uint16, error) {
	b, err := r.take(2, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) u32(what string) (uint32, error) {
	b, err := r.take(4, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) f32(what string) (float32, error) {
	v, err := r.u32(what)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *reader) f64(what string) (float64, error) {
	b, err := r.take(8, what)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// varStr reads a u16 length followed by that many raw bytes.
// Consumes 2 + length bytes.
func (r *reader) varStr(what string) (string, error) {
	n, err := r.u16(what)
	if err != nil {
		return "", err
	}
	raw, err := r.take(int(n), what)
	if err != nil {
		return "", err
	}
	return text(raw), nil
}

// text passes bytes through, replacing ill-formed UTF-8 with U+FFFD.
func text(raw []byte) string {
	s, _, err := transform.String(runes.ReplaceIllFormed(), string(raw))
	if err != nil {
		return string(raw)
	}
	return s
}
