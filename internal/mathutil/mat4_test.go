package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat4Row(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	assert.Equal(t, [4]float64{1, 2, 3, 4}, m.Row(0))
	assert.Equal(t, [4]float64{13, 14, 15, 16}, m.Row(3))
}

func TestMat4IsIdentity(t *testing.T) {
	assert.True(t, Mat4Identity().IsIdentity())

	m := Mat4Identity()
	m[3] = 0.5
	assert.False(t, m.IsIdentity())
}
