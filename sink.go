package logfan

// Sink consumes dispatched log statements. Implementations decide on their
// own whether a statement passes their severity and category tolerances
// and how to persist or display it; the dispatcher never filters.
//
// Log must return once the sink's own handling is initiated. It may queue
// internally (see AsyncSink) but must not block indefinitely. A returned
// error is reported on the dispatcher's fallback writer and never reaches
// the logging caller.
type Sink interface {
	Log(Statement) error
}

// SinkFunc is an adapter to allow use of ordinary functions as Sinks. If f
// is a function with the appropriate signature, SinkFunc(f) is a Sink that
// calls f.
type SinkFunc func(Statement) error

// Log implements Sink by calling f(st).
func (f SinkFunc) Log(st Statement) error { return f(st) }

// NewNopSink returns a sink that discards every statement.
func NewNopSink() Sink {
	return SinkFunc(func(Statement) error { return nil })
}
