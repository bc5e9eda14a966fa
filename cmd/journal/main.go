// An example application that keeps timestamped notes in SQLite.
//
// The application demonstrates the full toolkit: configuration through
// flags, environment, and a config file; logging routed through the shared
// context's error stream; storage failures annotated with context and
// converted into exit statuses at the top level.
//
//	journal add "Remembered to write this down."
//	journal list --limit=5
package main

import (
	"os"

	"github.com/kherge/go.carli/clierr"
	"github.com/kherge/go.carli/cliio"
	"github.com/kherge/go.carli/command"
	"github.com/kherge/go.carli/internal/config"
	"github.com/kherge/go.carli/internal/journal"
	"github.com/kherge/go.carli/internal/logger"
)

func main() {
	clierr.Exit(run(cliio.Standard(), os.Args[1:]))
}

func run(streams *cliio.Streams, args []string) error {
	cfg, flags, err := config.Load(args)
	if err != nil {
		return clierr.Context(err, func() string {
			return "Unable to load the configuration."
		})
	}

	logger.Init(streams.ErrorWriter(), cfg.LogLevel)

	store, err := journal.Open(cfg.Database)
	if err != nil {
		return clierr.Context(err, func() string {
			return "Unable to open the journal database."
		})
	}

	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close the journal database")
		}
	}()

	app, err := parse(streams, cfg, store, flags.Args())
	if err != nil {
		return err
	}

	return command.Run(app)
}
