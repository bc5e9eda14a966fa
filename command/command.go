// Package command provides scaffolding for applications with subcommands.
//
// Subcommands implement Executor against a shared context type, typically
// one that embeds or wraps *cliio.Streams. The application type selects the
// active subcommand and Run dispatches to it, with the application itself
// as the context so subcommands can reach both the streams and any global
// options.
package command

// Executor is implemented by subcommands that run against a shared context.
//
// The result only indicates failure: a subcommand reports success by
// returning nil and failure by returning an error that the top level hands
// to clierr.Exit. Anything the user should see goes through the context's
// streams, not the return value.
type Executor[C any] interface {
	// Execute runs the subcommand using the given context.
	Execute(ctx C) error
}

// Main is implemented by application types that manage the context for
// their subcommands. The implementation should stay trivial: hold the
// parsed options and the selected subcommand, and let Run do the dispatch.
type Main[C any] interface {
	// Subcommand returns the subcommand selected by the user.
	Subcommand() Executor[C]
}

// Run executes the application's selected subcommand, passing the
// application itself as the context.
func Run[C Main[C]](app C) error {
	return app.Subcommand().Execute(app)
}
