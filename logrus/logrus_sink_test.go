package logrus_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/logfan/logfan"
	logrussink "github.com/logfan/logfan/logrus"
)

func newLogrusSink() (logfan.Sink, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.Out = buf
	l.Level = logrus.DebugLevel
	l.Formatter = &logrus.TextFormatter{DisableColors: true, DisableTimestamp: true}
	return logrussink.NewSink(l), buf
}

func TestLogrusSink(t *testing.T) {
	sink, buf := newLogrusSink()

	err := sink.Log(logfan.Statement{
		Severity: logfan.Warning,
		Category: "Network",
		Site:     logfan.CallSite{Function: "svc.Dial", Line: 42},
		Message:  "connection lost",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"level=warning",
		`msg="connection lost"`,
		"category=Network",
		"caller=svc.Dial(42)",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output %q does not contain %q", buf.String(), want)
		}
	}
}

func TestLogrusSinkSeverities(t *testing.T) {
	for _, tc := range []struct {
		severity logfan.Severity
		want     string
	}{
		{logfan.Debug, "level=debug"},
		{logfan.Info, "level=info"},
		{logfan.Warning, "level=warning"},
		{logfan.Error, "level=error"},
	} {
		sink, buf := newLogrusSink()
		if err := sink.Log(logfan.Statement{Severity: tc.severity, Message: "m"}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("severity %v: output %q does not contain %q", tc.severity, buf.String(), tc.want)
		}
	}
}
