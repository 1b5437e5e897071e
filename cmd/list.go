package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrandao/mercadinho"
	"github.com/ebrandao/mercadinho/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the catalog" }
func (*listCmd) Usage() string {
	return `list

Print every product with its id, type, price and stock level.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := mercadinho.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProductsMarkdown(catalog.Products()))
	return subcommands.ExitSuccess
}
