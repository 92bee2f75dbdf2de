package awd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awd-inspect/internal/awd/awdtest"
)

func TestPropertiesConsumeDeclaredLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []awdtest.Prop
	}{
		{"empty", nil},
		{"one", []awdtest.Prop{{Key: 1, Value: []byte{0xaa}}}},
		{"several with repeated key", []awdtest.Prop{
			{Key: 7, Value: []byte{1, 2, 3, 4}},
			{Key: 7, Value: nil},
			{Key: 9, Value: []byte("hello")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var w awdtest.Buf
			w.Props(tt.entries...)
			declared := w.Len() - 4
			w.U32(0xdeadbeef) // trailing data must be left alone

			r := newReader(w.Bytes(), 0)
			props, err := r.readProperties()
			require.NoError(t, err)
			assert.Equal(t, declared+4, r.off)
			assert.Equal(t, uint32(declared), props.Length)
			require.Len(t, props.Entries, len(tt.entries))
			for i, e := range tt.entries {
				assert.Equal(t, e.Key, props.Entries[i].Key)
				assert.Equal(t, len(e.Value), len(props.Entries[i].Value))
			}
		})
	}
}

func TestPropertiesEntryOverrunsTable(t *testing.T) {
	t.Parallel()

	// Table claims 6 bytes; the entry says its value is 4 bytes but only 2
	// fit. The bytes after the table must not be borrowed.
	var w awdtest.Buf
	w.U32(6).U16(1).U16(4).Raw([]byte{1, 2}).Raw([]byte{3, 4, 5, 6})

	_, err := newReader(w.Bytes(), 0).readProperties()
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestPropertiesTableOverrunsBuffer(t *testing.T) {
	t.Parallel()

	var w awdtest.Buf
	w.U32(50).U16(1)

	_, err := newReader(w.Bytes(), 0).readProperties()
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestUserAttributes(t *testing.T) {
	t.Parallel()

	var w awdtest.Buf
	w.Attrs(5)
	r := newReader(w.Bytes(), 0)
	ua, err := r.readUserAttributes()
	require.NoError(t, err)
	assert.Equal(t, UserAttributes{Present: true, Length: 5}, ua)
	assert.Equal(t, 9, r.off)

	ua, err = newReader(nil, 0).readUserAttributes()
	require.NoError(t, err)
	assert.False(t, ua.Present)

	_, err = newReader([]byte{0, 0, 0, 9, 1}, 0).readUserAttributes()
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
