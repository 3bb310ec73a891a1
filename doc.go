// Package logfan fans structured log statements out to multiple sinks.
//
// A process owns one Dispatcher. Subsystems call its severity helpers, or
// the equivalent package-level functions, and the dispatcher captures the
// call site, renders the message, and delivers the resulting Statement to
// every registered Sink in registration order.
//
// Sinks, not the dispatcher, decide what to keep. A console sink may show
// everything from Debug up while a telemetry sink only forwards Warning and
// above; compose NewFilterSink around any sink to express a tolerance.
// Sink failures never reach the logging caller: a panic or returned error
// is reported on the dispatcher's fallback writer and delivery continues
// with the next sink.
//
// Basic Usage
//
// Register sinks once during process initialization, then log from
// anywhere:
//
//	d := logfan.NewDispatcher()
//	d.Register(logfan.NewWriterSink(logfan.NewSyncWriter(os.Stdout)))
//	d.Register(logfan.NewFilterSink(telemetry, logfan.MinSeverity(logfan.Warning)))
//
//	d.Infof("listening on %s", addr)
//	d.For("Network").Warningf("retrying %s", host)
//
// Concurrent Safety
//
// Dispatcher methods are safe for concurrent use; the registry is
// copy-on-write, so a slow sink never blocks registration. Individual
// sinks own their own synchronization: wrap a shared io.Writer in
// NewSyncWriter, serialize a whole sink with NewSyncSink, or decouple a
// slow sink from callers with an AsyncSink.
package logfan
