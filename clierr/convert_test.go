package clierr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/kherge/go.carli/clierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSingleLevelError(t *testing.T) {
	err := clierr.From(errors.New("the only message"))

	assert.Equal(t, 1, err.Status())
	assert.Equal(t, "the only message", err.Message())
	assert.Nil(t, err.Context())
}

func TestFromChainedError(t *testing.T) {
	root := errors.New("the root cause")
	middle := fmt.Errorf("the middle layer: %w", root)
	outer := fmt.Errorf("the outer layer: %w", middle)

	err := clierr.From(outer)

	assert.Equal(t, 1, err.Status())
	assert.Equal(t, "the root cause", err.Message())
	assert.Equal(t, []string{
		"the outer layer: the middle layer: the root cause",
		"the middle layer: the root cause",
	}, err.Context())
}

// The chain is collected outermost-first but rendered in reverse, so the
// outermost wrapper ends up closest to the root message. Manually added
// context still renders above the converted chain.
func TestFromChainedErrorDisplayOrder(t *testing.T) {
	outer := fmt.Errorf("outer: %w", errors.New("root"))

	err := clierr.From(outer).WithContext("added afterwards")

	assert.Equal(
		t,
		"added afterwards\n  outer: root\n    root\n",
		err.Error(),
	)
}

func TestFromOSErrorUsesErrno(t *testing.T) {
	pathErr := &fs.PathError{
		Op:   "open",
		Path: "/does/not/exist",
		Err:  syscall.ENOENT,
	}

	err := clierr.From(pathErr)

	assert.Equal(t, int(syscall.ENOENT), err.Status())
	assert.Equal(t, syscall.ENOENT.Error(), err.Message())
	assert.Equal(t, []string{pathErr.Error()}, err.Context())
}

func TestFromReturnsExistingError(t *testing.T) {
	original := clierr.New(2).WithMessage("already converted")

	assert.Same(t, original, clierr.From(original))
}

func TestContextAppendsOnFailure(t *testing.T) {
	err := clierr.Context(errors.New("the root cause"), func() string {
		return "The context message."
	})
	require.Error(t, err)

	cli := clierr.From(err)

	assert.Equal(t, "the root cause", cli.Message())
	assert.Equal(t, []string{"The context message."}, cli.Context())
}

func TestContextChainsAcrossLayers(t *testing.T) {
	fail := func() error {
		return clierr.New(1).WithMessage("The original error message.")
	}

	lower := func() error {
		return clierr.Context(fail(), func() string {
			return "Some added context."
		})
	}

	err := clierr.Context(lower(), func() string {
		return "Even more specific context."
	})
	require.Error(t, err)

	assert.Equal(
		t,
		"Even more specific context.\n"+
			"  Some added context.\n"+
			"    The original error message.\n",
		err.Error(),
	)
}

func TestContextIsLazyOnSuccess(t *testing.T) {
	err := clierr.Context(nil, func() string {
		t.Fatal("the message function must not be invoked on success")

		return ""
	})

	assert.NoError(t, err)
}
