// Package cliio provides an interchangeable abstraction over the input and
// output streams of a command line process.
//
// Commands normally use the console streams provided by the operating
// environment, but tests want to seed input and inspect output without
// touching the real process streams. Stream offers a uniform byte-stream
// surface over both backings, and Streams bundles the three roles a CLI
// process needs (error, input, output) behind independently lockable
// handles so identical program logic runs in production and in tests.
package cliio

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// kind identifies the backing of a Stream.
type kind int

const (
	memory kind = iota
	errorConsole
	inputConsole
	outputConsole
)

func (k kind) String() string {
	switch k {
	case memory:
		return "memory"
	case errorConsole:
		return "error console"
	case inputConsole:
		return "input console"
	case outputConsole:
		return "output console"
	}

	return "unknown"
}

// Stream is a byte stream over one of four backings: an in-memory seekable
// buffer, or the process error, input, or output console.
//
// Capability depends on the backing. The memory backing supports Read,
// Write, and Seek; the error and output consoles are write-only; the input
// console is read-only. Invoking an unsupported operation is a programming
// error and panics rather than silently degrading.
type Stream struct {
	kind kind

	// Memory backing. Writes land at pos, overwriting existing bytes and
	// growing the buffer as needed (cursor semantics).
	data []byte
	pos  int64
}

// Memory creates a stream backed by an empty in-memory buffer.
func Memory() *Stream {
	return &Stream{kind: memory}
}

// ErrorConsole creates a write-only stream backed by stderr.
func ErrorConsole() *Stream {
	return &Stream{kind: errorConsole}
}

// InputConsole creates a read-only stream backed by stdin.
func InputConsole() *Stream {
	return &Stream{kind: inputConsole}
}

// OutputConsole creates a write-only stream backed by stdout.
func OutputConsole() *Stream {
	return &Stream{kind: outputConsole}
}

// Read reads from the stream at its current position. It panics when the
// backing does not support reading.
func (s *Stream) Read(p []byte) (int, error) {
	switch s.kind {
	case memory:
		if s.pos >= int64(len(s.data)) {
			return 0, io.EOF
		}

		n := copy(p, s.data[s.pos:])
		s.pos += int64(n)

		return n, nil
	case inputConsole:
		return os.Stdin.Read(p)
	}

	panic(fmt.Sprintf("cliio: the %v stream does not support reading", s.kind))
}

// Write writes to the stream at its current position. It panics when the
// backing does not support writing.
func (s *Stream) Write(p []byte) (int, error) {
	switch s.kind {
	case memory:
		if grow := s.pos + int64(len(p)) - int64(len(s.data)); grow > 0 {
			s.data = append(s.data, make([]byte, grow)...)
		}

		n := copy(s.data[s.pos:], p)
		s.pos += int64(n)

		return n, nil
	case errorConsole:
		return os.Stderr.Write(p)
	case outputConsole:
		return os.Stdout.Write(p)
	}

	panic(fmt.Sprintf("cliio: the %v stream does not support writing", s.kind))
}

// Seek repositions the stream. Only the memory backing is seekable; any
// other backing panics.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.kind != memory {
		panic(fmt.Sprintf("cliio: the %v stream does not support seeking", s.kind))
	}

	var next int64

	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.pos + offset
	case io.SeekEnd:
		next = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("cliio: invalid seek whence: %d", whence)
	}

	if next < 0 {
		return 0, fmt.Errorf("cliio: seek to negative position: %d", next)
	}

	s.pos = next

	return next, nil
}

// ReadString drains the stream from its current position to the end and
// decodes the bytes as UTF-8, failing on invalid sequences.
func (s *Stream) ReadString() (string, error) {
	drained, err := io.ReadAll(s)
	if err != nil {
		return "", fmt.Errorf("failed to drain the stream: %w", err)
	}

	if !utf8.Valid(drained) {
		return "", fmt.Errorf("the stream contains invalid UTF-8")
	}

	return string(drained), nil
}

// ReadStringLossy drains the stream from its current position to the end
// and decodes the bytes as UTF-8, replacing invalid sequences with the
// Unicode replacement character.
func (s *Stream) ReadStringLossy() (string, error) {
	drained, err := io.ReadAll(s)
	if err != nil {
		return "", fmt.Errorf("failed to drain the stream: %w", err)
	}

	return strings.ToValidUTF8(string(drained), string(utf8.RuneError)), nil
}

// Bytes returns a copy of the entire memory buffer, regardless of the
// current position. It panics on console backings.
func (s *Stream) Bytes() []byte {
	if s.kind != memory {
		panic(fmt.Sprintf("cliio: the %v stream does not support snapshots", s.kind))
	}

	out := make([]byte, len(s.data))
	copy(out, s.data)

	return out
}

// Reset truncates the memory buffer and rewinds the position to the start.
// It panics on console backings.
func (s *Stream) Reset() {
	if s.kind != memory {
		panic(fmt.Sprintf("cliio: the %v stream does not support resetting", s.kind))
	}

	s.data = s.data[:0]
	s.pos = 0
}
