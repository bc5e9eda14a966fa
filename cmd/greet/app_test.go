package main

import (
	"testing"

	"github.com/kherge/go.carli/clierr"
	"github.com/kherge/go.carli/cliio"
	"github.com/kherge/go.carli/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHello(t *testing.T) {
	streams := cliio.NewTest()

	app, err := parse(streams.Streams, []string{"hello"})
	require.NoError(t, err)

	require.NoError(t, command.Run(app))

	assert.Equal(t, []byte("Hello, world.\n"), streams.OutputBytes())
	assert.Empty(t, streams.ErrorBytes())
}

func TestHelloIsTheDefaultSubcommand(t *testing.T) {
	streams := cliio.NewTest()

	app, err := parse(streams.Streams, nil)
	require.NoError(t, err)

	require.NoError(t, command.Run(app))

	assert.Equal(t, []byte("Hello, world.\n"), streams.OutputBytes())
}

func TestGoodbyeYelled(t *testing.T) {
	streams := cliio.NewTest()

	app, err := parse(streams.Streams, []string{"goodbye", "--name", "friend", "--yell"})
	require.NoError(t, err)

	require.NoError(t, command.Run(app))

	assert.Equal(t, []byte("Goodbye, friend!\n"), streams.OutputBytes())
}

func TestUnrecognizedSubcommand(t *testing.T) {
	streams := cliio.NewTest()

	_, err := parse(streams.Streams, []string{"wave"})
	require.Error(t, err)

	cli := clierr.From(err)

	assert.Equal(t, 2, cli.Status())
	assert.Equal(t, "unrecognized subcommand: wave", cli.Message())
}
