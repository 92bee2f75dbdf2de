// Package awdtest assembles AWD byte streams for tests.
package awdtest

import (
	"encoding/binary"
	"math"
)

// Buf is a big-endian byte builder. Methods chain.
type Buf struct {
	b []byte
}

func (w *Buf) Bytes() []byte { return w.b }
func (w *Buf) Len() int      { return len(w.b) }

func (w *Buf) U8(v uint8) *Buf {
	w.b = append(w.b, v)
	return w
}

func (w *Buf) U16(v uint16) *Buf {
	w.b = binary.BigEndian.AppendUint16(w.b, v)
	return w
}

func (w *Buf) U32(v uint32) *Buf {
	w.b = binary.BigEndian.AppendUint32(w.b, v)
	return w
}

func (w *Buf) F32(v float32) *Buf {
	return w.U32(math.Float32bits(v))
}

func (w *Buf) F64(v float64) *Buf {
	w.b = binary.BigEndian.AppendUint64(w.b, math.Float64bits(v))
	return w
}

func (w *Buf) Raw(p []byte) *Buf {
	w.b = append(w.b, p...)
	return w
}

// VarStr appends a u16-length-prefixed string.
func (w *Buf) VarStr(s string) *Buf {
	return w.U16(uint16(len(s))).Raw([]byte(s))
}

// Prop is one property table entry.
type Prop struct {
	Key   uint16
	Value []byte
}

// Props appends a property table holding entries.
func (w *Buf) Props(entries ...Prop) *Buf {
	var body Buf
	for _, e := range entries {
		body.U16(e.Key).U16(uint16(len(e.Value))).Raw(e.Value)
	}
	return w.U32(uint32(body.Len())).Raw(body.b)
}

// Attrs appends a user attribute blob of n zero bytes.
func (w *Buf) Attrs(n int) *Buf {
	return w.U32(uint32(n)).Raw(make([]byte, n))
}

// Header returns a 12-byte AWD header.
func Header(major, minor uint8, compression uint8, bodyLen uint32) []byte {
	var w Buf
	return w.Raw([]byte("AWD")).U8(major).U8(minor).U16(0).U8(compression).U32(bodyLen).Bytes()
}

// Block returns a block preamble followed by payload.
func Block(id uint32, ns, typ uint8, payload []byte) []byte {
	var w Buf
	return w.U32(id).U8(ns).U8(typ).U32(uint32(len(payload))).Raw(payload).Bytes()
}

// File concatenates a header and blocks; the body length is computed.
func File(major, minor uint8, blocks ...[]byte) []byte {
	var body []byte
	for _, b := range blocks {
		body = append(body, b...)
	}
	return append(Header(major, minor, 0, uint32(len(body))), body...)
}

// MeshInstance returns a 136-byte mesh instance payload.
func MeshInstance(parent uint32, mtx [16]float64, dataID uint32) []byte {
	var w Buf
	w.U32(parent)
	for _, v := range mtx {
		w.F64(v)
	}
	return w.U32(dataID).Bytes()
}

// Stream appends one sub-mesh stream with its declared length taken from
// body.
func Stream(typ uint8, body []byte) []byte {
	var w Buf
	return w.U8(typ).U32(uint32(len(body))).Raw(body).Bytes()
}

// SubMesh returns a sub-mesh record wrapping the given streams.
func SubMesh(material uint32, streams ...[]byte) []byte {
	var body []byte
	for _, s := range streams {
		body = append(body, s...)
	}
	var w Buf
	return w.U32(material).U32(uint32(len(body))).Raw(body).Bytes()
}

// Floats encodes float32 stream elements.
func Floats(vs ...float32) []byte {
	var w Buf
	for _, v := range vs {
		w.F32(v)
	}
	return w.Bytes()
}

// Indices encodes uint16 stream elements.
func Indices(vs ...uint16) []byte {
	var w Buf
	for _, v := range vs {
		w.U16(v)
	}
	return w.Bytes()
}

// Joint returns one skeleton joint record with a zeroed bind pose.
func Joint(id, parent uint32, name string) []byte {
	var w Buf
	return w.U32(id).U32(parent).VarStr(name).Raw(make([]byte, 128)).Bytes()
}
