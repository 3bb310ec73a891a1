// Package term provides a sink for logging to a terminal, coloring each
// statement by severity when the writer is a tty.
package term

import (
	"io"

	"github.com/mattn/go-isatty"

	"github.com/logfan/logfan"
)

// An FdWriter is a Writer that has a file descriptor.
type FdWriter interface {
	io.Writer
	Fd() uintptr
}

// NewSink returns a sink that writes colored statement lines to w if w is
// a terminal, and returns alternate otherwise.
func NewSink(w io.Writer, alternate logfan.Sink) logfan.Sink {
	fw, ok := w.(FdWriter)
	if !ok || !isatty.IsTerminal(fw.Fd()) {
		return alternate
	}
	return NewColorSink(fw)
}
