package logfan

import (
	"encoding/json"
	"io"
)

// NewJSONSink returns a sink that marshals each statement as a JSON object
// with severity, category, caller and msg keys, one object per line. Each
// statement produces one call to w.Write. The passed writer must be safe
// for concurrent use by multiple goroutines if the sink will be used
// concurrently; see NewSyncWriter.
func NewJSONSink(w io.Writer) Sink {
	return &jsonSink{Writer: w}
}

type jsonSink struct {
	io.Writer
}

func (s *jsonSink) Log(st Statement) error {
	return json.NewEncoder(s.Writer).Encode(map[string]interface{}{
		"severity": st.Severity.String(),
		"category": string(st.Category),
		"caller":   st.Site.String(),
		"msg":      st.Message,
	})
}
