// Command admin manages the product catalog and produces sales reports.
// Without arguments it runs the interactive administration menu.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/ebrandao/mercadinho/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	cmd.RegisterAdmin(commander)

	flag.Parse()
	if flag.NArg() == 0 {
		flag.CommandLine.Parse([]string{"menu"})
	}
	os.Exit(int(commander.Execute(context.Background())))
}
