// Package report renders decoded AWD files as an indented text tree.
//
// Lines appear in exactly the order the decoder met the data, so a report
// can be traced back to the file byte by byte.
package report

import (
	"fmt"
	"io"
	"strings"
)

// indentWidth is the number of spaces per nesting level.
const indentWidth = 2

// printer writes indented lines and remembers the first write error.
// depth is per-render state; nothing is shared between renders.
type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	pad := strings.Repeat(" ", p.depth*indentWidth)
	_, p.err = io.WriteString(p.w, pad+fmt.Sprintf(format, args...)+"\n")
}

func (p *printer) blank() {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, "\n")
}

// nest runs fn one level deeper.
func (p *printer) nest(fn func()) {
	p.depth++
	fn()
	p.depth--
}

func hexBytes(b []byte) string {
	return fmt.Sprintf("% x", b)
}
