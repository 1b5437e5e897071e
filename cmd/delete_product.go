package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrandao/mercadinho"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  int
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a product from the catalog" }
func (*deleteCmd) Usage() string {
	return `delete -id <id> -yes

Delete a product. Products after it are renumbered so ids stay dense; the
sales ledger is not rewritten, so old report lines keep their historical id.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the product to delete.")
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := mercadinho.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prod, ok := catalog.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Product %d not found.\n", c.id)
		return subcommands.ExitFailure
	}
	if !c.yes {
		fmt.Fprintf(os.Stderr, "Refusing to delete %q without -yes.\n", prod.Name)
		return subcommands.ExitUsageError
	}

	if err := catalog.Remove(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := mercadinho.SaveCatalog(*catalogFile, catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %q, ids renumbered.\n", prod.Name)
	return subcommands.ExitSuccess
}
