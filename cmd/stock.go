package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrandao/mercadinho"
	"github.com/google/subcommands"
)

type stockCmd struct {
	id    int
	delta string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "adjust a product's stock level" }
func (*stockCmd) Usage() string {
	return `stock -id <id> -delta <qty>

Apply a signed delta to a product's stock level. A negative delta records a
loss and may drive the level below zero.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the product to adjust.")
	f.StringVar(&c.delta, "delta", "", "Signed quantity to add to the stock level.")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	delta, err := mercadinho.ParseQuantity(c.delta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -delta: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog, err := mercadinho.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	stock, err := catalog.AdjustStock(c.id, delta)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := mercadinho.SaveCatalog(*catalogFile, catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prod, _ := catalog.Get(c.id)
	fmt.Printf("New stock level for %q: %s %s.\n", prod.Name, stock, prod.Unit())
	return subcommands.ExitSuccess
}
