package report

import (
	"io"

	"awd-inspect/internal/awd"
	"awd-inspect/internal/texture"
)

// Render writes the report for one file. decodeErr is the error returned
// by awd.Decode alongside f; it is printed inline so that no failure is
// missing from the report. f may be nil when the header itself failed.
func Render(w io.Writer, name string, f *awd.File, decodeErr error) error {
	p := &printer{w: w}
	p.line("%s", name)
	p.nest(func() {
		if f != nil {
			renderHeader(p, f)
			for i := range f.Blocks {
				renderBlock(p, &f.Blocks[i])
			}
		}
		if decodeErr != nil && !attached(f, decodeErr) {
			p.line("<error> %v", decodeErr)
		}
	})
	return p.err
}

// attached reports whether err is already shown under the last block.
func attached(f *awd.File, err error) bool {
	if f == nil || len(f.Blocks) == 0 {
		return false
	}
	return f.Blocks[len(f.Blocks)-1].Err == err
}

func renderHeader(p *printer, f *awd.File) {
	h := f.Header
	if h.Magic != awd.Magic {
		p.line("magic:        <error> %q", h.Magic)
	}
	p.line("version:      %d.%d", h.Major, h.Minor)
	p.line("compression:  %s", h.Compression)
	p.line("body size:    %d (%#x)", h.BodyLength, h.BodyLength)
	if f.BodyMismatch() {
		p.line("<error> body size disagrees with file: %d bytes follow the header", f.Size-awd.HeaderSize)
	}
	p.blank()
}

func renderBlock(p *printer, b *awd.Block) {
	p.line("BLOCK %s", b.Type)
	p.nest(func() {
		p.line("NS: %d, ID: %d", b.Namespace, b.ID)
		p.line("Length: %d", b.Length)

		if b.Body != nil {
			p.blank()
			switch body := b.Body.(type) {
			case *awd.MeshInstance:
				renderMeshInstance(p, body)
			case *awd.MeshData:
				renderMeshData(p, body)
			case *awd.Skeleton:
				renderSkeleton(p, body)
			case *awd.BitmapTexture:
				renderBitmapTexture(p, body)
			}
		}
		if b.Err != nil {
			p.line("<error> %v", b.Err)
		}
		p.blank()
	})
}

func renderMeshInstance(p *printer, mi *awd.MeshInstance) {
	p.line("DATA ID: %d", mi.DataID)
	p.line("PARENT ID: %d", mi.ParentID)
	if mi.Transform.IsIdentity() {
		p.line("TRANSFORM MATRIX: (identity)")
	} else {
		p.line("TRANSFORM MATRIX:")
	}
	for r := 0; r < 4; r++ {
		row := mi.Transform.Row(r)
		p.line("%f %f %f %f", row[0], row[1], row[2], row[3])
	}
	renderUserAttributes(p, mi.Attributes)
}

func renderMeshData(p *printer, md *awd.MeshData) {
	p.line("NAME: %s", md.Name)
	p.line("SUB-MESHES: %d", md.NumSubs)
	renderProperties(p, md.Properties)
	p.blank()

	p.nest(func() {
		for _, sub := range md.SubMeshes {
			p.line("SUB-MESH")
			p.nest(func() {
				p.line("Material ID: %d", sub.MaterialID)
				p.line("Length:      %d", sub.Length)
				for _, st := range sub.Streams {
					renderStream(p, st)
				}
			})
		}
	})
	renderUserAttributes(p, md.Attributes)
}

func renderStream(p *printer, st awd.Stream) {
	p.line("STREAM (%s)", st.Type)
	p.nest(func() {
		p.line("Length: %d", st.Length)
		for _, v := range st.Floats {
			p.line("%f", v)
		}
		for _, v := range st.Indices {
			p.line("%d", v)
		}
		p.blank()
	})
}

func renderSkeleton(p *printer, sk *awd.Skeleton) {
	p.line("NAME: %s", sk.Name)
	p.line("JOINTS: %d", sk.NumJoints)
	renderProperties(p, sk.Properties)

	p.nest(func() {
		for _, j := range sk.Joints {
			p.line("JOINT %s (id=%d, parent=%d)", j.Name, j.ID, j.ParentID)
		}
	})
	renderUserAttributes(p, sk.Attributes)
}

func renderBitmapTexture(p *printer, bt *awd.BitmapTexture) {
	p.line("NAME: %s", bt.Name)
	p.line("STORAGE: %s", bt.Storage)
	p.line("DATA: %d bytes", len(bt.Data))
	switch bt.Storage {
	case awd.TextureExternal:
		p.line("URL: %s", bt.URL())
	case awd.TextureEmbedded:
		info, err := texture.Sniff(bt.Data)
		if err != nil {
			p.line("IMAGE: <error> %v", err)
		} else {
			p.line("IMAGE: %s", info)
		}
	}
	renderProperties(p, bt.Properties)
	renderUserAttributes(p, bt.Attributes)
}

func renderProperties(p *printer, props awd.Properties) {
	p.blank()
	if props.Length == 0 {
		return
	}
	p.line("PROPERTIES: (%db)", props.Length)
	p.nest(func() {
		for _, e := range props.Entries {
			p.line("%d: %s", e.Key, hexBytes(e.Value))
		}
	})
}

func renderUserAttributes(p *printer, ua awd.UserAttributes) {
	if ua.Present && ua.Length > 0 {
		p.line("USER ATTRIBUTES (%db)", ua.Length)
	}
}
