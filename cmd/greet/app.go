package main

import (
	"fmt"

	"github.com/kherge/go.carli/clierr"
	"github.com/kherge/go.carli/cliio"
	"github.com/kherge/go.carli/command"
	"github.com/spf13/pflag"
)

// application holds the shared streams and the globally used options.
type application struct {
	*cliio.Streams

	name       string
	subcommand command.Executor[*application]
}

func (a *application) Subcommand() command.Executor[*application] {
	return a.subcommand
}

// hello greets the user.
type hello struct {
	yell bool
}

func (c hello) Execute(ctx *application) error {
	return ctx.Output(func(s *cliio.Stream) error {
		_, err := fmt.Fprintf(s, "Hello, %s%s\n", ctx.name, punctuation(c.yell, "!"))

		return err
	})
}

// goodbye sees the user off.
type goodbye struct {
	yell bool
}

func (c goodbye) Execute(ctx *application) error {
	return ctx.Output(func(s *cliio.Stream) error {
		_, err := fmt.Fprintf(s, "Goodbye, %s%s\n", ctx.name, punctuation(c.yell, "!"))

		return err
	})
}

func punctuation(yell bool, loud string) string {
	if yell {
		return loud
	}

	return "."
}

// parse processes the command line arguments into an application instance.
func parse(streams *cliio.Streams, args []string) (*application, error) {
	flags := pflag.NewFlagSet("greet", pflag.ContinueOnError)
	flags.SetOutput(streams.ErrorWriter())
	name := flags.StringP("name", "n", "world", "The name of the user")
	yell := flags.BoolP("yell", "y", false, "Do we want to yell it?")

	if err := flags.Parse(args); err != nil {
		return nil, clierr.Errorf(2, "failed to parse the arguments: %v", err)
	}

	app := &application{
		Streams: streams,
		name:    *name,
	}

	switch sub := flags.Arg(0); sub {
	case "", "hello":
		app.subcommand = hello{yell: *yell}
	case "goodbye":
		app.subcommand = goodbye{yell: *yell}
	default:
		return nil, clierr.Errorf(2, "unrecognized subcommand: %s", sub)
	}

	return app, nil
}
