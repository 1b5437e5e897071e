package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrandao/mercadinho"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id     int
	name   string
	weight bool
	price  string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "rewrite a product's name, type and price" }
func (*updateCmd) Usage() string {
	return `update -id <id> -name <name> -price <price> [-weight]

Rewrite the name, type and price of a product. Stock is untouched; use the
stock command for that.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the product to update.")
	f.StringVar(&c.name, "name", "", "New product name, a single word.")
	f.BoolVar(&c.weight, "weight", false, "Product is sold by weight (kg) instead of by unit.")
	f.StringVar(&c.price, "price", "", "New unit price, '.' or ',' as the fractional separator.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := mercadinho.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -price: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog, err := mercadinho.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := catalog.Update(c.id, c.name, c.weight, price); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := mercadinho.SaveCatalog(*catalogFile, catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated product %d.\n", c.id)
	return subcommands.ExitSuccess
}
