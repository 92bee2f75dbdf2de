package awd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awd-inspect/internal/awd/awdtest"
)

func TestDecodeBitmapTexture(t *testing.T) {
	t.Parallel()

	payload := new(awdtest.Buf).VarStr("wall").U8(0).
		U32(9).Raw([]byte("wall.jpeg")).Props().Attrs(1).Bytes()

	bt, err := decodeBitmapTexture(payload, 0)
	require.NoError(t, err)
	assert.Equal(t, "wall", bt.Name)
	assert.Equal(t, TextureExternal, bt.Storage)
	assert.Equal(t, "wall.jpeg", bt.URL())
	assert.Equal(t, UserAttributes{Present: true, Length: 1}, bt.Attributes)
}

func TestDecodeBitmapTextureTrailingBytes(t *testing.T) {
	t.Parallel()

	payload := new(awdtest.Buf).VarStr("wall").U8(0).
		U32(9).Raw([]byte("wall.jpeg")).Props().Attrs(0).U8(1).Bytes()

	bt, err := decodeBitmapTexture(payload, 0)
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, "wall.jpeg", bt.URL())
}
