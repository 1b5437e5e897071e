package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrandao/mercadinho"
	"github.com/google/subcommands"
)

type addCmd struct {
	name   string
	weight bool
	price  string
	stock  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product to the catalog" }
func (*addCmd) Usage() string {
	return `add -name <name> -price <price> [-weight] [-stock <qty>]

Add a product to the catalog. The new product gets the next free id.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name, a single word.")
	f.BoolVar(&c.weight, "weight", false, "Product is sold by weight (kg) instead of by unit.")
	f.StringVar(&c.price, "price", "", "Unit price, '.' or ',' as the fractional separator.")
	f.StringVar(&c.stock, "stock", "0", "Initial stock level.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := mercadinho.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -price: %v\n", err)
		return subcommands.ExitUsageError
	}
	stock, err := mercadinho.ParseQuantity(c.stock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -stock: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog, err := mercadinho.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prod, err := catalog.Create(c.name, c.weight, price, stock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := mercadinho.SaveCatalog(*catalogFile, catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created product %d.\n", prod.ID)
	return subcommands.ExitSuccess
}
