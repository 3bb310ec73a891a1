package term

import (
	"fmt"
	"io"

	"github.com/logfan/logfan"
)

// severity colors, log15-style: debug cyan, info green, warning yellow,
// error red.
var severityColors = map[logfan.Severity]int{
	logfan.Debug:   36,
	logfan.Info:    32,
	logfan.Warning: 33,
	logfan.Error:   31,
}

var _ = logfan.Sink((*colorSink)(nil))

// NewColorSink returns a sink that writes each statement to w with its
// severity name wrapped in the ANSI color for that severity. It colors
// unconditionally; use NewSink to fall back to a plain sink when w is not
// a terminal.
func NewColorSink(w io.Writer) logfan.Sink {
	return &colorSink{w: w}
}

type colorSink struct {
	w io.Writer
}

func (s *colorSink) Log(st logfan.Statement) error {
	color, ok := severityColors[st.Severity]
	if !ok {
		_, err := fmt.Fprintf(s.w, "%s %s\n", st.Severity, st.Line())
		return err
	}
	_, err := fmt.Fprintf(s.w, "\x1b[%dm%s\x1b[0m %s\n", color, st.Severity, st.Line())
	return err
}
