package awd

import (
	"encoding/binary"
	"fmt"
	"math"
)

// MeshInstanceSize is the fixed layout of a mesh instance before its
// optional user attributes: parent id, 4x4 float64 transform, data id.
const MeshInstanceSize = 4 + 16*8 + 4

func decodeMeshInstance(data []byte, base int) (*MeshInstance, error) {
	r := newReader(data, base)
	mi := &MeshInstance{}
	var err error
	if mi.ParentID, err = r.u32("mesh instance parent id"); err != nil {
		return mi, err
	}
	for i := range mi.Transform {
		if mi.Transform[i], err = r.f64("mesh instance transform"); err != nil {
			return mi, err
		}
	}
	if mi.DataID, err = r.u32("mesh instance data id"); err != nil {
		return mi, err
	}
	if mi.Attributes, err = r.readUserAttributes(); err != nil {
		return mi, err
	}
	return mi, r.end("mesh instance")
}

// decodeMeshData returns whatever was decoded before a failure along with
// the error, so the report can show how far decoding got.
func decodeMeshData(data []byte, base int) (*MeshData, error) {
	r := newReader(data, base)
	md := &MeshData{}
	var err error
	if md.Name, err = r.varStr("mesh data name"); err != nil {
		return md, err
	}
	if md.NumSubs, err = r.u16("sub-mesh count"); err != nil {
		return md, err
	}
	if md.Properties, err = r.readProperties(); err != nil {
		return md, err
	}

	// Whichever runs out first, the declared count or the payload, wins.
	for len(md.SubMeshes) < int(md.NumSubs) && r.remaining() > 0 {
		sub, err := r.readSubMesh()
		md.SubMeshes = append(md.SubMeshes, sub)
		if err != nil {
			return md, err
		}
	}

	if md.Attributes, err = r.readUserAttributes(); err != nil {
		return md, err
	}
	return md, r.end("mesh data")
}

func (r *reader) readSubMesh() (SubMesh, error) {
	var sm SubMesh
	var err error
	if sm.MaterialID, err = r.u32("sub-mesh material id"); err != nil {
		return sm, err
	}
	if sm.Length, err = r.u32("sub-mesh length"); err != nil {
		return sm, err
	}
	start := r.off
	body, err := r.take(int(sm.Length), "sub-mesh")
	if err != nil {
		return sm, mismatch(err)
	}

	sr := newReader(body, r.base+start)
	for sr.remaining() > 0 {
		st, err := sr.readStream()
		if err != nil {
			return sm, mismatch(err)
		}
		sm.Streams = append(sm.Streams, st)
	}
	return sm, nil
}

// readStream always advances by the stream's declared length. Elements are
// only decoded for recognized stream types.
func (r *reader) readStream() (Stream, error) {
	var st Stream
	t, err := r.u8("stream type")
	if err != nil {
		return st, err
	}
	st.Type = StreamType(t)
	if st.Length, err = r.u32("stream length"); err != nil {
		return st, err
	}
	start := r.off
	body, err := r.take(int(st.Length), "stream")
	if err != nil {
		return st, err
	}

	size := st.Type.ElemSize()
	if size == 0 {
		return st, nil
	}
	if len(body)%size != 0 {
		return st, r.errAt(start, "stream",
			fmt.Errorf("%w: %d bytes is not a whole number of %s elements", ErrLengthMismatch, len(body), st.Type))
	}

	switch st.Type {
	case StreamTriangle:
		st.Indices = make([]uint16, 0, len(body)/2)
		for i := 0; i < len(body); i += 2 {
			st.Indices = append(st.Indices, binary.BigEndian.Uint16(body[i:]))
		}
	default:
		st.Floats = make([]float32, 0, len(body)/4)
		for i := 0; i < len(body); i += 4 {
			st.Floats = append(st.Floats, math.Float32frombits(binary.BigEndian.Uint32(body[i:])))
		}
	}
	return st, nil
}
