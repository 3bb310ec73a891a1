package logfan_test

import (
	"strings"
	"testing"

	"github.com/logfan/logfan"
)

func TestRender(t *testing.T) {
	for _, tc := range []struct {
		format string
		args   []interface{}
		want   string
	}{
		{"User %s has %d points", []interface{}{"Alice", 42}, "User Alice has 42 points"},
		{"no placeholders", nil, "no placeholders"},
		{"100% done", nil, "100% done"},
		{"%v", []interface{}{nil}, "<nil>"},
	} {
		if got := logfan.Render(tc.format, tc.args...); got != tc.want {
			t.Errorf("Render(%q, %v): got %q, want %q", tc.format, tc.args, got, tc.want)
		}
	}
}

func TestRenderMissingArgument(t *testing.T) {
	format := "User %s has %d points" // non-constant so vet's printf check allows the intentional misuse
	got := logfan.Render(format, "Alice")

	// The message degrades but stays present and partially rendered.
	if got == "" {
		t.Fatal("got empty message")
	}
	if !strings.Contains(got, "User Alice has") {
		t.Errorf("got %q, want the rendered prefix preserved", got)
	}
}

func TestRenderExtraArguments(t *testing.T) {
	format := "just %s" // non-constant so vet's printf check allows the intentional misuse
	got := logfan.Render(format, "this", "extra")
	if !strings.Contains(got, "just this") {
		t.Errorf("got %q, want the rendered message preserved", got)
	}
}

func TestRenderMismatchedVerb(t *testing.T) {
	format := "count: %d" // non-constant so vet's printf check allows the intentional misuse
	got := logfan.Render(format, "not a number")
	if got == "" {
		t.Fatal("got empty message")
	}
	if !strings.Contains(got, "count: ") {
		t.Errorf("got %q, want the template prefix preserved", got)
	}
}
