package main

import (
	"fmt"
	"strings"

	"github.com/kherge/go.carli/clierr"
	"github.com/kherge/go.carli/cliio"
	"github.com/kherge/go.carli/command"
	"github.com/kherge/go.carli/internal/config"
	"github.com/kherge/go.carli/internal/journal"
)

// application holds the shared streams and the collaborators every
// subcommand needs.
type application struct {
	*cliio.Streams

	config     *config.Config
	store      *journal.Store
	subcommand command.Executor[*application]
}

func (a *application) Subcommand() command.Executor[*application] {
	return a.subcommand
}

// add appends a new entry to the journal.
type add struct {
	text string
}

func (c add) Execute(ctx *application) error {
	err := ctx.store.Append(c.text)
	if err := clierr.Context(err, func() string {
		return "Unable to append the journal entry."
	}); err != nil {
		return err
	}

	return ctx.Output(func(s *cliio.Stream) error {
		_, err := fmt.Fprintln(s, "Added.")

		return err
	})
}

// list prints the most recent entries.
type list struct {
	limit int
}

func (c list) Execute(ctx *application) error {
	entries, err := ctx.store.List(c.limit)
	if err := clierr.Context(err, func() string {
		return "Unable to list the journal entries."
	}); err != nil {
		return err
	}

	return ctx.Output(func(s *cliio.Stream) error {
		for _, entry := range entries {
			if _, err := fmt.Fprintf(
				s,
				"%s  %s\n",
				entry.CreatedAt.Format("2006-01-02 15:04"),
				entry.Text,
			); err != nil {
				return err
			}
		}

		return nil
	})
}

// parse selects the subcommand from the remaining arguments.
func parse(
	streams *cliio.Streams,
	cfg *config.Config,
	store *journal.Store,
	args []string,
) (*application, error) {
	app := &application{
		Streams: streams,
		config:  cfg,
		store:   store,
	}

	switch sub := argAt(args, 0); sub {
	case "add":
		text := strings.Join(args[1:], " ")
		if text == "" {
			return nil, clierr.Errorf(2, "usage: journal add <text>")
		}

		app.subcommand = add{text: text}
	case "", "list":
		app.subcommand = list{limit: cfg.Limit}
	default:
		return nil, clierr.Errorf(2, "unrecognized subcommand: %s", sub)
	}

	return app, nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
