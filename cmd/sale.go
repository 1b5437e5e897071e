package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ebrandao/mercadinho"
	"github.com/google/subcommands"
)

type saleCmd struct {
	id        int
	qty       string
	ticketDir string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a single-product sale" }
func (*saleCmd) Usage() string {
	return `sale -id <id> -qty <qty> [-ticket <dir>]

Record the sale of one product without an interactive session: print the
receipt, merge the sale into the ledger and persist the decremented stock.
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the product sold.")
	f.StringVar(&c.qty, "qty", "", "Quantity sold, units or kg depending on the product.")
	f.StringVar(&c.ticketDir, "ticket", "", "Directory where to write the PDF ticket (none by default).")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	qty, err := mercadinho.ParseQuantity(c.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -qty: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog, err := mercadinho.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cart := mercadinho.NewCart()
	if _, err := cart.Add(catalog, c.id, qty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// checkout reads nothing, so an empty prompter is enough.
	p := newPrompter(strings.NewReader(""), os.Stdout)
	p.show = printMarkdown
	checkout(p, catalog, cart, *catalogFile, *salesFile, c.ticketDir)
	return subcommands.ExitSuccess
}
