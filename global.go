package logfan

import "sync/atomic"

// std backs the package-level entry points. It is an explicit, swappable
// dispatcher instance rather than hidden state: embedders replace it once
// during initialization and tests construct private dispatchers instead.
var std atomic.Pointer[Dispatcher]

func init() { std.Store(NewDispatcher()) }

// Default returns the dispatcher used by the package-level entry points.
func Default() *Dispatcher { return std.Load() }

// SetDefault replaces the dispatcher used by the package-level entry
// points. SetDefault(nil) restores a fresh dispatcher with an empty
// registry. It may be called concurrently with the entry points.
func SetDefault(d *Dispatcher) {
	if d == nil {
		d = NewDispatcher()
	}
	std.Store(d)
}

// Register adds sink to the default dispatcher.
func Register(sink Sink) { Default().Register(sink) }

// RegisterAll adds sinks to the default dispatcher in order.
func RegisterAll(sinks ...Sink) { Default().RegisterAll(sinks...) }

// Debugf logs a debug statement through the default dispatcher against the
// General category.
func Debugf(format string, args ...interface{}) {
	Default().Logf(Debug, General, Caller(1), format, args...)
}

// Infof logs an info statement through the default dispatcher against the
// General category.
func Infof(format string, args ...interface{}) {
	Default().Logf(Info, General, Caller(1), format, args...)
}

// Warningf logs a warning statement through the default dispatcher against
// the General category.
func Warningf(format string, args ...interface{}) {
	Default().Logf(Warning, General, Caller(1), format, args...)
}

// Errorf logs an error statement through the default dispatcher against
// the General category.
func Errorf(format string, args ...interface{}) {
	Default().Logf(Error, General, Caller(1), format, args...)
}

// For returns a category-bound view of the default dispatcher.
func For(category Category) *CategoryLogger { return Default().For(category) }
