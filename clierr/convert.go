package clierr

import (
	"errors"
	"syscall"
)

// From converts any error into an *Error by walking its chain of wrapped
// causes via errors.Unwrap.
//
// Each non-terminal node contributes its text as a context message, visited
// outermost first; the terminal (unwrapped) node becomes the root message.
// When the terminal node is an OS-level error carrying a raw errno, the
// errno becomes the exit status; otherwise the status defaults to 1.
//
// Because context is collected outermost-first but rendered in reverse, the
// outermost wrapper of a converted chain appears closest to the root
// message rather than as the headline. Context added manually afterwards
// still renders above it. This matches the long-standing behavior of the
// original library and is kept as-is.
//
// An error that is already an *Error is returned unchanged.
func From(err error) *Error {
	if cli, ok := err.(*Error); ok {
		return cli
	}

	converted := New(1)

	for current := err; ; {
		next := errors.Unwrap(current)
		if next == nil {
			converted.message = current.Error()

			var errno syscall.Errno
			if errors.As(current, &errno) {
				converted.status = int(errno)
			}

			break
		}

		converted.context = append(converted.context, current.Error())
		current = next
	}

	return converted
}

// Context appends a lazily built annotation to a failed result.
//
// When err is nil the message function is never invoked, so the cost of
// building the string is only paid on the failure path:
//
//	entries, err := store.List(limit)
//	if err := clierr.Context(err, func() string {
//		return "Unable to list the journal entries."
//	}); err != nil {
//		return err
//	}
//
// A non-nil err that is not already an *Error is converted through From
// before the annotation is appended.
func Context(err error, message func() string) error {
	if err == nil {
		return nil
	}

	return From(err).WithContext(message())
}
