package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00 00 00 03", hexBytes([]byte{0, 0, 0, 3}))
	assert.Equal(t, "ff", hexBytes([]byte{0xff}))
	assert.Equal(t, "", hexBytes(nil))
}

func TestPrinterNest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.line("a")
	p.nest(func() {
		p.line("b %d", 1)
		p.blank()
	})
	p.line("c")
	assert.Equal(t, "a\n  b 1\n\nc\n", buf.String())
}
