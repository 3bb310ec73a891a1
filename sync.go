package logfan

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
)

// SwapSink wraps another sink that may be safely replaced while other
// goroutines deliver through the SwapSink concurrently. The zero value
// discards all statements without error.
type SwapSink struct {
	sink atomic.Value
}

type sinkStruct struct {
	Sink
}

// Log implements Sink by forwarding st to the currently wrapped sink. It
// does nothing if the wrapped sink is nil.
func (s *SwapSink) Log(st Statement) error {
	w, ok := s.sink.Load().(sinkStruct)
	if !ok || w.Sink == nil {
		return nil
	}
	return w.Log(st)
}

// Swap replaces the currently wrapped sink with sink. Swap may be called
// concurrently with calls to Log from other goroutines.
func (s *SwapSink) Swap(sink Sink) {
	s.sink.Store(sinkStruct{sink})
}

// SyncWriter synchronizes concurrent writes to an io.Writer.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter returns a new SyncWriter. The returned writer is safe for
// concurrent use by multiple goroutines.
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

// Write writes p to the underlying io.Writer. If another write is already
// in progress, the calling goroutine blocks until the SyncWriter is
// available.
func (w *SyncWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	n, err = w.w.Write(p)
	w.mu.Unlock()
	return n, err
}

// syncSink serializes concurrent delivery to another sink.
type syncSink struct {
	mu   sync.Mutex
	next Sink
}

// NewSyncSink returns a sink that synchronizes concurrent use of next.
// Only one goroutine at a time is allowed to deliver to the wrapped sink;
// the others block until it is available.
func NewSyncSink(next Sink) Sink {
	return &syncSink{next: next}
}

// Log delivers st to the underlying sink. If another delivery is already
// in progress, the calling goroutine blocks until the sink is available.
func (s *syncSink) Log(st Statement) error {
	s.mu.Lock()
	err := s.next.Log(st)
	s.mu.Unlock()
	return err
}

// AsyncSink queues statements and delivers them to the wrapped sink on a
// background goroutine, decoupling slow sinks from logging callers.
//
// If the wrapped sink's Log method ever returns an error, the AsyncSink
// stops processing statements and makes the error available via the Err
// method. Any unprocessed statements in the buffer are lost.
type AsyncSink struct {
	next        Sink
	statementsC chan Statement

	stopping chan struct{}
	stopped  chan struct{}

	mu  sync.Mutex
	err error
}

// NewAsyncSink returns a new AsyncSink that delivers to next and can
// buffer up to size statements before overflowing.
func NewAsyncSink(next Sink, size int) *AsyncSink {
	s := &AsyncSink{
		next:        next,
		statementsC: make(chan Statement, size),
		stopping:    make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	go s.run()
	return s
}

// run forwards statements from s.statementsC to s.next.
func (s *AsyncSink) run() {
	defer close(s.stopped)
	for st := range s.statementsC {
		if err := s.next.Log(st); err != nil {
			s.mu.Lock()
			s.stop(err)
			s.mu.Unlock()
			return
		}
	}
}

// caller must hold s.mu
func (s *AsyncSink) stop(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
	select {
	case <-s.stopping:
		// already stopping, do nothing
	default:
		close(s.stopping)
		close(s.statementsC)
	}
}

// Log queues st for delivery by the wrapped sink. Log may be called
// concurrently by multiple goroutines. If the buffer is full, Log returns
// ErrAsyncSinkOverflow and the statement is not queued. If the AsyncSink
// is stopping, Log returns ErrAsyncSinkStopping.
func (s *AsyncSink) Log(st Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.stopping:
		return ErrAsyncSinkStopping
	default:
	}

	select {
	case s.statementsC <- st:
		return nil
	default:
		return ErrAsyncSinkOverflow
	}
}

// Errors returned by AsyncSink.
var (
	ErrAsyncSinkStopping = errors.New("async sink: sink stopped")
	ErrAsyncSinkOverflow = errors.New("async sink: statement buffer overflow")
)

// Stop stops the AsyncSink. After Stop returns the sink will not accept
// new statements. Statements queued prior to calling Stop will still be
// delivered.
func (s *AsyncSink) Stop() {
	s.mu.Lock()
	s.stop(nil)
	s.mu.Unlock()
}

// Stopping returns a channel that is closed after Stop is called.
func (s *AsyncSink) Stopping() <-chan struct{} {
	return s.stopping
}

// Stopped returns a channel that is closed after Stop is called and all
// queued statements have been delivered to the wrapped sink.
func (s *AsyncSink) Stopped() <-chan struct{} {
	return s.stopped
}

// Err returns the first error returned by the wrapped sink.
func (s *AsyncSink) Err() error {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	return err
}
