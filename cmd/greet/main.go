// An example application with multiple subcommands.
//
// The application greets the user by name:
//
//	greet hello --name=world
//	greet goodbye --name=world --yell
package main

import (
	"os"

	"github.com/kherge/go.carli/clierr"
	"github.com/kherge/go.carli/cliio"
	"github.com/kherge/go.carli/command"
)

func main() {
	app, err := parse(cliio.Standard(), os.Args[1:])
	if err != nil {
		clierr.Exit(err)
	}

	clierr.Exit(command.Run(app))
}
