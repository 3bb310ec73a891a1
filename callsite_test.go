package logfan_test

import (
	"strings"
	"testing"

	"github.com/logfan/logfan"
)

func TestCaller(t *testing.T) {
	site := logfan.Caller(0)

	if !strings.HasSuffix(site.File, "callsite_test.go") {
		t.Errorf("got file %q, want callsite_test.go", site.File)
	}
	if !strings.Contains(site.Function, "TestCaller") {
		t.Errorf("got function %q, want TestCaller", site.Function)
	}
	if site.Line <= 0 {
		t.Errorf("got line %d, want a positive line number", site.Line)
	}
}

func TestCallerSkip(t *testing.T) {
	site := caboose()
	if !strings.Contains(site.Function, "TestCallerSkip") {
		t.Errorf("got function %q, want TestCallerSkip", site.Function)
	}
}

// caboose captures its own caller, like a forwarding log helper would.
func caboose() logfan.CallSite {
	return logfan.Caller(1)
}

func TestCallSiteString(t *testing.T) {
	for _, tc := range []struct {
		site logfan.CallSite
		want string
	}{
		{logfan.CallSite{Function: "main.main", Line: 12}, "main.main(12)"},
		{logfan.CallSite{Function: "github.com/acme/svc/net.Dial", Line: 7}, "net.Dial(7)"},
		{logfan.CallSite{}, "???(0)"},
	} {
		if got := tc.site.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
