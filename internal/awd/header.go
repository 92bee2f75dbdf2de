package awd

// DecodeHeader parses the fixed file header and returns it with the number
// of bytes consumed (always HeaderSize on success). An unrecognized
// compression code or magic is kept as-is rather than rejected.
func DecodeHeader(data []byte) (Header, int, error) {
	r := newReader(data, 0)
	magic, err := r.take(len(Magic), "header magic")
	if err != nil {
		return Header{}, 0, err
	}
	var h Header
	h.Magic = string(magic)
	if h.Major, err = r.u8("header version"); err != nil {
		return Header{}, 0, err
	}
	if h.Minor, err = r.u8("header version"); err != nil {
		return Header{}, 0, err
	}
	if h.Flags, err = r.u16("header flags"); err != nil {
		return Header{}, 0, err
	}
	c, err := r.u8("header compression")
	if err != nil {
		return Header{}, 0, err
	}
	h.Compression = Compression(c)
	if h.BodyLength, err = r.u32("header body length"); err != nil {
		return Header{}, 0, err
	}
	return h, r.off, nil
}
