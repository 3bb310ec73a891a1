package term_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/logfan/logfan"
	"github.com/logfan/logfan/term"
)

func TestColorSink(t *testing.T) {
	for _, tc := range []struct {
		severity logfan.Severity
		want     string
	}{
		{logfan.Debug, "\x1b[36mDEBUG\x1b[0m [GENERAL] svc.Run(7) m\n"},
		{logfan.Info, "\x1b[32mINFO\x1b[0m [GENERAL] svc.Run(7) m\n"},
		{logfan.Warning, "\x1b[33mWARNING\x1b[0m [GENERAL] svc.Run(7) m\n"},
		{logfan.Error, "\x1b[31mERROR\x1b[0m [GENERAL] svc.Run(7) m\n"},
	} {
		buf := &bytes.Buffer{}
		sink := term.NewColorSink(buf)

		err := sink.Log(logfan.Statement{
			Severity: tc.severity,
			Category: logfan.General,
			Site:     logfan.CallSite{Function: "svc.Run", Line: 7},
			Message:  "m",
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("severity %v: got %q, want %q", tc.severity, got, tc.want)
		}
	}
}

func TestNewSinkFallsBackForNonTerminals(t *testing.T) {
	alternate := logfan.NewWriterSink(io.Discard)

	// A bytes.Buffer has no file descriptor, so it cannot be a terminal.
	if got := term.NewSink(&bytes.Buffer{}, alternate); got != alternate {
		t.Error("want the alternate sink for a non-terminal writer")
	}
}
