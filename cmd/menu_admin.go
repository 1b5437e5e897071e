package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ebrandao/mercadinho"
	"github.com/ebrandao/mercadinho/date"
	"github.com/ebrandao/mercadinho/renderer"
	"github.com/google/subcommands"
)

type adminMenuCmd struct{}

func (*adminMenuCmd) Name() string     { return "menu" }
func (*adminMenuCmd) Synopsis() string { return "run the interactive administration menu" }
func (*adminMenuCmd) Usage() string {
	return `menu
	Run the interactive administration menu. This is the default when no
	subcommand is given.
`
}
func (*adminMenuCmd) SetFlags(f *flag.FlagSet) {}

func (c *adminMenuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := newPrompter(os.Stdin, os.Stdout)
	p.show = printMarkdown
	if err := runAdminMenu(p, *catalogFile, *salesFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runAdminMenu drives the administration menu until exit or end of input.
// The catalog is loaded once and saved after every mutating operation.
func runAdminMenu(p *prompter, catalogPath, salesPath string) error {
	catalog, err := mercadinho.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	for {
		p.printf("\n1. Create product\n")
		if !catalog.IsEmpty() {
			p.printf("2. Modify product\n3. Delete product\n4. Adjust stock\n")
		}
		p.printf("5. Sales report\n6. Exit\n")

		choice, err := p.word("Choose an option: ")
		if errors.Is(err, errCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == cancelWord {
			continue
		}
		option, err := strconv.Atoi(choice)
		if err != nil {
			p.printf("Invalid option.\n")
			continue
		}

		var mutated bool
		switch {
		case option == 1:
			mutated = createProduct(p, catalog)
		case option == 2 && !catalog.IsEmpty():
			mutated = updateProduct(p, catalog)
		case option == 3 && !catalog.IsEmpty():
			mutated = deleteProduct(p, catalog)
		case option == 4 && !catalog.IsEmpty():
			mutated = adjustStock(p, catalog)
		case option == 5:
			salesReport(p, salesPath)
		case option == 6:
			p.printf("Bye.\n")
			return nil
		default:
			p.printf("Invalid option.\n")
		}

		if mutated {
			if err := mercadinho.SaveCatalog(catalogPath, catalog); err != nil {
				logger.Error().Err(err).Str("file", catalogPath).Msg("catalog not saved")
			}
		}
	}
}

// createProduct collects the fields of a new product. It reports whether the
// catalog was mutated.
func createProduct(p *prompter, catalog *mercadinho.Catalog) bool {
	name, err := p.name(fmt.Sprintf("New product name (or '%s'): ", cancelWord))
	if err != nil {
		return false
	}
	byWeight, err := p.flag01("Sold by weight (1) or unit (0): ")
	if err != nil {
		return false
	}
	price, err := p.money("Price: ")
	if err != nil {
		return false
	}
	stock, err := p.quantity("Available quantity: ")
	if err != nil {
		return false
	}

	prod, err := catalog.Create(name, byWeight, price, stock)
	if err != nil {
		p.printf("%v\n", err)
		return false
	}
	p.printf("Product created with id %d.\n", prod.ID)
	return true
}

// updateProduct rewrites the name, type and price of a product; its stock is
// untouched. An unknown id reprompts until a known one or the sentinel.
func updateProduct(p *prompter, catalog *mercadinho.Catalog) bool {
	p.display(renderer.ProductsMarkdown(catalog.Products()))
	for {
		id, err := p.id(idPrompt())
		if err != nil {
			return false
		}
		if _, ok := catalog.Get(id); !ok {
			p.printf("Product %d not found. Try again.\n", id)
			continue
		}

		name, err := p.name("New name: ")
		if err != nil {
			return false
		}
		byWeight, err := p.flag01("Sold by weight (1) or unit (0): ")
		if err != nil {
			return false
		}
		price, err := p.money("New price: ")
		if err != nil {
			return false
		}
		if err := catalog.Update(id, name, byWeight, price); err != nil {
			p.printf("%v\n", err)
			return false
		}
		p.printf("Product updated.\n")
		return true
	}
}

// deleteProduct removes a product after explicit confirmation. Remaining
// products are renumbered so ids stay dense.
func deleteProduct(p *prompter, catalog *mercadinho.Catalog) bool {
	p.display(renderer.ProductsMarkdown(catalog.Products()))
	for {
		id, err := p.id(idPrompt())
		if err != nil {
			return false
		}
		prod, ok := catalog.Get(id)
		if !ok {
			p.printf("Product %d not found. Try again.\n", id)
			continue
		}

		confirm, err := p.word(fmt.Sprintf("Delete %q? Type '%s' to confirm: ", prod.Name, confirmWord))
		if err != nil {
			return false
		}
		if confirm != confirmWord {
			p.printf("Deletion canceled.\n")
			return false
		}
		if err := catalog.Remove(id); err != nil {
			p.printf("%v\n", err)
			return false
		}
		p.printf("Product deleted, ids renumbered.\n")
		return true
	}
}

// adjustStock applies a signed delta to a product's stock. The delta may
// drive the level negative; the new level is echoed so the operator sees it.
func adjustStock(p *prompter, catalog *mercadinho.Catalog) bool {
	p.display(renderer.ProductsMarkdown(catalog.Products()))
	id, err := p.id(idPrompt())
	if err != nil {
		return false
	}
	prod, ok := catalog.Get(id)
	if !ok {
		p.printf("Product %d not found.\n", id)
		return false
	}

	delta, err := p.quantity(fmt.Sprintf("Amount to add or remove (%s): ", prod.Unit()))
	if err != nil {
		return false
	}
	stock, err := catalog.AdjustStock(id, delta)
	if err != nil {
		p.printf("%v\n", err)
		return false
	}
	p.printf("Stock updated. New level: %s %s.\n", stock, prod.Unit())
	return true
}

// salesReport aggregates the ledger over an inclusive date range, grouped by
// product name.
func salesReport(p *prompter, salesPath string) {
	from, err := p.day("Start date (YYYY-MM-DD): ")
	if err != nil {
		return
	}
	to, err := p.day("End date (YYYY-MM-DD): ")
	if err != nil {
		return
	}

	ledger, err := mercadinho.LoadSalesLedger(salesPath)
	if err != nil {
		p.printf("%v\n", err)
		return
	}
	report := ledger.Report(date.NewRange(from, to), mercadinho.ByName)
	p.display(renderer.ReportMarkdown(report))
}
