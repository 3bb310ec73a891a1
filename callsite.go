package logfan

import (
	"strconv"
	"strings"

	"github.com/go-stack/stack"
)

// CallSite records where a log statement originated. It is captured at the
// moment a logging entry point is invoked and never mutated afterward.
type CallSite struct {
	File     string
	Function string
	Line     int
}

// Caller returns the call site skip frames above the caller of Caller
// itself; Caller(0) is the immediate caller. The severity helpers use this
// to capture their own caller's position, and forwarding layers pass a
// larger skip to see through themselves.
func Caller(skip int) CallSite {
	f := stack.Caller(skip + 1).Frame()
	return CallSite{File: f.File, Function: f.Function, Line: f.Line}
}

// String renders the site as "function(line)" with the function stripped
// to its package-qualified name.
func (c CallSite) String() string {
	fn := c.Function
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if fn == "" {
		fn = "???"
	}
	return fn + "(" + strconv.Itoa(c.Line) + ")"
}
