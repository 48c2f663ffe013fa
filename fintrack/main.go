// Command fintrack is a command line tool to track a personal investment
// fund stored in a Google Sheets spreadsheet.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/adinata/fintrack/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Handle shell completion requests before anything else.
	cmd.Completion().Complete("fintrack")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	// Unknown subcommands fall through to fintrack-<name> extensions.
	if name := flag.Arg(0); name != "" && !cmd.Known(name) {
		if handled, code := cmd.RunExtension(name, flag.Args()[1:]); handled {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
