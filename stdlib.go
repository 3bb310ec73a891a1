package logfan

import "log"

// NewStdlibSink returns a sink that forwards statements to a standard
// library *log.Logger, for programs whose output plumbing is already built
// around it. The statement's own call site is rendered into the line, so
// the logger's Lshortfile/Llongfile flags are better left unset.
func NewStdlibSink(l *log.Logger) Sink {
	return SinkFunc(func(st Statement) error {
		return l.Output(2, st.Severity.String()+" "+st.Line())
	})
}
