package cliio

import (
	"io"
	"sync"
)

// Handle guards a stream with a mutex so one execution context can be
// shared across call sites, or threads, with controlled mutable access.
//
// Lock blocks until the stream is available and returns it; the caller must
// release it with Unlock. Locking a handle that the same goroutine already
// holds is a usage error and deadlocks. For scoped access prefer the
// closure accessors on Streams, which always release.
type Handle struct {
	mu     sync.Mutex
	stream *Stream
}

// NewHandle wraps a stream in a lockable handle.
func NewHandle(stream *Stream) *Handle {
	return &Handle{stream: stream}
}

// Lock acquires exclusive access to the stream and returns it.
func (h *Handle) Lock() *Stream {
	h.mu.Lock()

	return h.stream
}

// Unlock releases the stream.
func (h *Handle) Unlock() {
	h.mu.Unlock()
}

// Streams holds the three lockable streams used by a command line process:
// error output, input, and global output.
//
// Each role is guarded independently, so holding one role never blocks
// access to the other two. A Streams value is shared by pointer and owns
// its handles for its entire lifetime.
type Streams struct {
	err *Handle
	in  *Handle
	out *Handle
}

// New creates a shared context from the given streams.
func New(err, in, out *Stream) *Streams {
	return &Streams{
		err: NewHandle(err),
		in:  NewHandle(in),
		out: NewHandle(out),
	}
}

// Standard creates a shared context bound to the process console streams.
func Standard() *Streams {
	return New(ErrorConsole(), InputConsole(), OutputConsole())
}

// Error locks the error output stream, passes it to the closure, and
// returns the closure's result. The lock is released on every exit path.
func (s *Streams) Error(fn func(*Stream) error) error {
	stream := s.err.Lock()
	defer s.err.Unlock()

	return fn(stream)
}

// Input locks the input stream, passes it to the closure, and returns the
// closure's result. The lock is released on every exit path.
func (s *Streams) Input(fn func(*Stream) error) error {
	stream := s.in.Lock()
	defer s.in.Unlock()

	return fn(stream)
}

// Output locks the global output stream, passes it to the closure, and
// returns the closure's result. The lock is released on every exit path.
func (s *Streams) Output(fn func(*Stream) error) error {
	stream := s.out.Lock()
	defer s.out.Unlock()

	return fn(stream)
}

// ToError returns the lockable handle for the error output stream, for
// callers needing longer-held or finer-grained access.
func (s *Streams) ToError() *Handle {
	return s.err
}

// ToInput returns the lockable handle for the input stream.
func (s *Streams) ToInput() *Handle {
	return s.in
}

// ToOutput returns the lockable handle for the global output stream.
func (s *Streams) ToOutput() *Handle {
	return s.out
}

// ErrorWriter returns an io.Writer that locks the error output stream for
// the duration of each Write, letting the role feed APIs that expect a
// plain writer (loggers, fmt.Fprintf, and so on).
func (s *Streams) ErrorWriter() io.Writer {
	return lockedWriter{handle: s.err}
}

// OutputWriter returns an io.Writer that locks the global output stream
// for the duration of each Write.
func (s *Streams) OutputWriter() io.Writer {
	return lockedWriter{handle: s.out}
}

// InputReader returns an io.Reader that locks the input stream for the
// duration of each Read.
func (s *Streams) InputReader() io.Reader {
	return lockedReader{handle: s.in}
}

type lockedWriter struct {
	handle *Handle
}

func (w lockedWriter) Write(p []byte) (int, error) {
	stream := w.handle.Lock()
	defer w.handle.Unlock()

	return stream.Write(p)
}

type lockedReader struct {
	handle *Handle
}

func (r lockedReader) Read(p []byte) (int, error) {
	stream := r.handle.Lock()
	defer r.handle.Unlock()

	return stream.Read(p)
}
