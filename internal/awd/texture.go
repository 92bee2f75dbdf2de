package awd

func decodeBitmapTexture(data []byte, base int) (*BitmapTexture, error) {
	r := newReader(data, base)
	bt := &BitmapTexture{}
	var err error
	if bt.Name, err = r.varStr("texture name"); err != nil {
		return bt, err
	}
	s, err := r.u8("texture storage")
	if err != nil {
		return bt, err
	}
	bt.Storage = TextureStorage(s)
	n, err := r.u32("texture data length")
	if err != nil {
		return bt, err
	}
	if bt.Data, err = r.take(int(n), "texture data"); err != nil {
		return bt, err
	}
	if bt.Properties, err = r.readProperties(); err != nil {
		return bt, err
	}
	if bt.Attributes, err = r.readUserAttributes(); err != nil {
		return bt, err
	}
	return bt, r.end("bitmap texture")
}

// URL returns the location of an externally stored texture.
func (t *BitmapTexture) URL() string {
	if t.Storage != TextureExternal {
		return ""
	}
	return text(t.Data)
}
