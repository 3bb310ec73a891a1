package logfan

import (
	"io"

	"github.com/go-logfmt/logfmt"
)

// NewLogfmtSink returns a sink that encodes statements as logfmt records
// with severity, category, caller and msg keys. Each statement produces no
// more than one call to w.Write. The passed writer must be safe for
// concurrent use by multiple goroutines if the sink will be used
// concurrently; see NewSyncWriter.
func NewLogfmtSink(w io.Writer) Sink {
	return &logfmtSink{w: w}
}

type logfmtSink struct {
	w io.Writer
}

func (s *logfmtSink) Log(st Statement) error {
	b, err := logfmt.MarshalKeyvals(
		"severity", st.Severity.String(),
		"category", string(st.Category),
		"caller", st.Site.String(),
		"msg", st.Message,
	)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = s.w.Write(b)
	return err
}
