// Package clierr provides errors that carry a process exit status.
//
// A command line application reports a failure by printing a message to
// stderr and exiting with a non-zero status code. Error manages the exit
// status, an optional root message, and any context messages added as the
// error travels up the call stack. At the top of the application the error
// is rendered and the process exits:
//
//	if err := run(); err != nil {
//		clierr.Exit(err)
//	}
//
// The rendered form prints the most recently added context first, each
// earlier context line nested one level deeper, and the root message last:
//
//	Even more specific context.
//	  Some added context.
//	    The original error message.
package clierr

import (
	"fmt"
	"os"
	"strings"
)

// Hooked so tests can observe the exit status.
var osExit = os.Exit

// Error is an error carrying an exit status code, an optional root message,
// and an ordered list of context messages.
//
// The zero value is not useful; construct instances with New or Errorf, or
// derive them from native errors with From.
type Error struct {
	status  int
	message string
	context []string
}

// New creates a new error with the given exit status code and no message.
func New(status int) *Error {
	return &Error{status: status}
}

// Errorf creates a new error with the given exit status code and a
// formatted root message.
func Errorf(status int, format string, args ...any) *Error {
	return New(status).WithMessagef(format, args...)
}

// WithMessage sets the root message and returns the error for chaining.
func (e *Error) WithMessage(message string) *Error {
	e.message = message

	return e
}

// WithMessagef sets a formatted root message and returns the error for
// chaining.
func (e *Error) WithMessagef(format string, args ...any) *Error {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithContext appends a context message and returns the error for chaining.
//
// A context message should be added when the root message alone may be
// confusing. An OS error such as "no such file or directory" says nothing
// about which file was involved, and a context line can clarify where the
// failure occurred.
func (e *Error) WithContext(message string) *Error {
	e.context = append(e.context, message)

	return e
}

// WithContextf appends a formatted context message and returns the error
// for chaining.
func (e *Error) WithContextf(format string, args ...any) *Error {
	return e.WithContext(fmt.Sprintf(format, args...))
}

// Status returns the exit status code.
func (e *Error) Status() int {
	return e.status
}

// Message returns the root message, or "" when none was set.
func (e *Error) Message() string {
	return e.message
}

// Context returns a copy of the context messages in insertion order, or nil
// when none were added.
func (e *Error) Context() []string {
	if len(e.context) == 0 {
		return nil
	}

	out := make([]string, len(e.context))
	copy(out, e.context)

	return out
}

// Error renders the display form of the error.
//
// Context messages are printed in reverse insertion order, each line
// indented two spaces deeper than the previous, followed by the root
// message at the deepest level. Every printed line ends with a newline.
// An error with neither message nor context renders as "".
func (e *Error) Error() string {
	var sb strings.Builder

	depth := 0

	for i := len(e.context) - 1; i >= 0; i-- {
		sb.WriteString(strings.Repeat(" ", depth*2))
		sb.WriteString(e.context[i])
		sb.WriteByte('\n')

		depth++
	}

	if e.message != "" {
		sb.WriteString(strings.Repeat(" ", depth*2))
		sb.WriteString(e.message)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Exit prints the display form to stderr and terminates the process with
// the carried status code. Nothing is printed when the error has neither a
// message nor context.
//
// Only the top level of an application should call Exit, and only once.
func (e *Error) Exit() {
	if e.message != "" || len(e.context) > 0 {
		fmt.Fprint(os.Stderr, e.Error())
	}

	osExit(e.status)
}

// Exit terminates the process using the given error, converting it through
// From if necessary. A nil error is a no-op, allowing the common pattern:
//
//	clierr.Exit(run(streams))
func Exit(err error) {
	if err == nil {
		return
	}

	From(err).Exit()
}
