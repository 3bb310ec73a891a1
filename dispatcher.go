package logfan

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Dispatcher owns an ordered registry of sinks and fans every log
// statement out to all of them. Construct one per process during
// initialization; all methods are safe for concurrent use from multiple
// goroutines.
type Dispatcher struct {
	mu       sync.Mutex
	sinks    []Sink // copy-on-write; see snapshot
	fallback io.Writer
}

// Option sets a parameter on a Dispatcher.
type Option func(*Dispatcher)

// Fallback sets the writer used to report sink failures. Reporting is
// best-effort; a nil writer disables it. The default is os.Stderr.
func Fallback(w io.Writer) Option {
	return func(d *Dispatcher) { d.fallback = w }
}

// NewDispatcher returns a Dispatcher with an empty sink registry.
func NewDispatcher(options ...Option) *Dispatcher {
	d := &Dispatcher{fallback: os.Stderr}
	for _, option := range options {
		option(d)
	}
	return d
}

// Register appends sink to the registry. Registration order defines
// delivery order. Registering the same sink twice is allowed and makes it
// receive every subsequent statement twice, once per registered position.
func (d *Dispatcher) Register(sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sinks := make([]Sink, len(d.sinks)+1)
	copy(sinks, d.sinks)
	sinks[len(d.sinks)] = sink
	d.sinks = sinks
}

// RegisterAll registers each sink in order. It is equivalent to calling
// Register for each element.
func (d *Dispatcher) RegisterAll(sinks ...Sink) {
	for _, sink := range sinks {
		d.Register(sink)
	}
}

// snapshot returns the registry as of now. Register replaces the slice
// instead of mutating it, so callers may iterate a snapshot without
// holding the lock and a slow sink never blocks registration.
func (d *Dispatcher) snapshot() []Sink {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sinks
}

// Log delivers an already-rendered message to every sink registered at the
// time of the call, in registration order, synchronously on the calling
// goroutine. Sink failures are isolated: a panic or returned error is
// reported on the fallback writer and delivery continues with the next
// sink. With no sinks registered, Log is a no-op.
func (d *Dispatcher) Log(severity Severity, category Category, site CallSite, message string) {
	d.dispatch(Statement{Severity: severity, Category: category, Site: site, Message: message})
}

// Logf renders format with args (see Render) and delivers the result like
// Log. A malformed format never aborts dispatch; the degraded rendering is
// delivered instead.
func (d *Dispatcher) Logf(severity Severity, category Category, site CallSite, format string, args ...interface{}) {
	d.dispatch(Statement{Severity: severity, Category: category, Site: site, Message: Render(format, args...)})
}

func (d *Dispatcher) dispatch(st Statement) {
	for _, sink := range d.snapshot() {
		d.deliver(sink, st)
	}
}

// deliver invokes one sink, containing any panic so that one sink can
// neither starve the sinks registered after it nor crash the logging
// caller.
func (d *Dispatcher) deliver(sink Sink, st Statement) {
	defer func() {
		if r := recover(); r != nil {
			d.report(fmt.Sprintf("sink panic: %v", r))
		}
	}()
	if err := sink.Log(st); err != nil {
		d.report("sink error: " + err.Error())
	}
}

// report writes a sink failure to the fallback writer. Errors here have
// nowhere left to go and are dropped.
func (d *Dispatcher) report(msg string) {
	if d.fallback == nil {
		return
	}
	fmt.Fprintf(d.fallback, "logfan: %s\n", msg)
}
