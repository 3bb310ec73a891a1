package logfan

import "io"

// NewWriterSink returns the reference console sink. Each statement is
// rendered as its severity name followed by the default line form and
// written to w in a single Write call. The passed writer must be safe for
// concurrent use by multiple goroutines if the sink will be used
// concurrently; see NewSyncWriter.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s *writerSink) Log(st Statement) error {
	_, err := io.WriteString(s.w, st.Severity.String()+" "+st.Line()+"\n")
	return err
}
