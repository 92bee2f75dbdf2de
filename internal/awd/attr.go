package awd

import (
	"errors"
	"fmt"
)

// readProperties decodes a property table. It consumes exactly 4 + the
// declared table length, or fails.
func (r *reader) readProperties() (Properties, error) {
	start := r.off
	n, err := r.u32("property table length")
	if err != nil {
		return Properties{}, err
	}
	props := Properties{Length: n}
	if n == 0 {
		return props, nil
	}
	body, err := r.take(int(n), "property table")
	if err != nil {
		return Properties{}, err
	}

	// Entries may not read past the table even if the block has more bytes.
	pr := newReader(body, r.base+start+4)
	for pr.remaining() > 0 {
		entryOff := pr.off
		key, err := pr.u16("property key")
		if err != nil {
			return Properties{}, mismatch(err)
		}
		vlen, err := pr.u16("property value length")
		if err != nil {
			return Properties{}, mismatch(err)
		}
		val, err := pr.take(int(vlen), "property value")
		if err != nil {
			return Properties{}, pr.errAt(entryOff, "property entry",
				fmt.Errorf("%w: value of %d bytes overruns table of %d", ErrLengthMismatch, vlen, n))
		}
		props.Entries = append(props.Entries, Property{Key: key, Value: val})
	}
	return props, nil
}

// readUserAttributes reads the attribute length and skips the blob.
// An exhausted reader yields absent attributes.
func (r *reader) readUserAttributes() (UserAttributes, error) {
	if r.remaining() == 0 {
		return UserAttributes{}, nil
	}
	n, err := r.u32("user attributes length")
	if err != nil {
		return UserAttributes{}, err
	}
	if err := r.skip(int(n), "user attributes"); err != nil {
		return UserAttributes{}, err
	}
	return UserAttributes{Present: true, Length: n}, nil
}

// mismatch re-labels a bounds failure inside a length-delimited structure:
// the bytes exist in the file, the structure's own length is wrong.
func mismatch(err error) error {
	if errors.Is(err, ErrLengthMismatch) {
		return err
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return &DecodeError{Offset: de.Offset, What: de.What, Err: fmt.Errorf("%w: %v", ErrLengthMismatch, de.Err)}
	}
	return err
}
