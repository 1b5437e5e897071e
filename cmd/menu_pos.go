package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ebrandao/mercadinho"
	"github.com/ebrandao/mercadinho/date"
	"github.com/ebrandao/mercadinho/pdf"
	"github.com/ebrandao/mercadinho/renderer"
	"github.com/google/subcommands"
)

type posMenuCmd struct {
	ticketDir string
}

func (*posMenuCmd) Name() string     { return "menu" }
func (*posMenuCmd) Synopsis() string { return "run the interactive point-of-sale session" }
func (*posMenuCmd) Usage() string {
	return `menu [-ticket <dir>]
	Run the interactive point-of-sale session. This is the default when no
	subcommand is given.
`
}
func (c *posMenuCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticketDir, "ticket", "", "Directory where to write PDF tickets (none by default).")
}

func (c *posMenuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := newPrompter(os.Stdin, os.Stdout)
	p.show = printMarkdown
	if err := runPOSMenu(p, *catalogFile, *salesFile, c.ticketDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runPOSMenu drives a point-of-sale session: one cart at a time, checkout
// persists, exit discards whatever is still in the cart.
func runPOSMenu(p *prompter, catalogPath, salesPath, ticketDir string) error {
	catalog, err := mercadinho.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	cart := mercadinho.NewCart()

	for {
		p.printf("\n1. Add product to cart\n2. Remove product from cart\n3. Checkout\n4. Cancel purchase\n5. Exit\n")

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

		switch option {
		case 1:
			addToCart(p, catalog, cart)
		case 2:
			removeFromCart(p, catalog, cart)
		case 3:
			checkout(p, catalog, cart, catalogPath, salesPath, ticketDir)
		case 4:
			// Cancelling discards the cart without restoring reserved
			// stock; only removing an item gives stock back.
			cart.Clear()
			p.printf("Purchase canceled.\n")
		case 5:
			p.printf("Bye.\n")
			return nil
		default:
			p.printf("Invalid option.\n")
		}
	}
}

// addToCart reserves stock for one product and puts it in the cart. A
// quantity above the available stock refuses the whole add.
func addToCart(p *prompter, catalog *mercadinho.Catalog, cart *mercadinho.Cart) {
	p.display(renderer.ProductsMarkdown(catalog.Products()))
	id, ok := p.oneShotID(idPrompt())
	if !ok {
		return
	}
	prod, found := catalog.Get(id)
	if !found {
		p.printf("Product %d not found.\n", id)
		return
	}

	p.printf("Available: %s %s\n", prod.Stock, prod.Unit())
	prompt := "Quantity: "
	if prod.ByWeight {
		prompt = "Weight (kg): "
	}
	qty, err := p.quantity(prompt)
	if err != nil {
		return
	}
	if _, err := cart.Add(catalog, id, qty); err != nil {
		p.printf("%v\n", err)
		return
	}
	p.printf("Product added to the cart.\n")
}

// removeFromCart takes the first matching item out of the cart and returns
// its quantity to the catalog's stock.
func removeFromCart(p *prompter, catalog *mercadinho.Catalog, cart *mercadinho.Cart) {
	if cart.IsEmpty() {
		p.printf("The cart is empty.\n")
		return
	}
	p.display(renderer.CartMarkdown(cart.Items()))
	id, ok := p.oneShotID(idPrompt())
	if !ok {
		return
	}
	if _, removed := cart.Remove(catalog, id); !removed {
		p.printf("Product %d is not in the cart.\n", id)
		return
	}
	p.printf("Product removed from the cart.\n")
}

// checkout prints the receipt, merges the sale into the ledger and persists
// the decremented stock. The receipt is still shown and the catalog still
// saved when the ledger write fails: the files may diverge, the failure is
// logged, and the session goes on.
func checkout(p *prompter, catalog *mercadinho.Catalog, cart *mercadinho.Cart, catalogPath, salesPath, ticketDir string) {
	on := date.Today()
	receipt := mercadinho.NewReceipt(cart, on)
	p.display(renderer.ReceiptMarkdown(receipt))

	ledger, err := mercadinho.LoadSalesLedger(salesPath)
	if err != nil {
		logger.Error().Err(err).Str("file", salesPath).Msg("sales ledger not updated")
	} else {
		ledger.Merge(cart, on)
		if err := mercadinho.SaveSalesLedger(salesPath, ledger); err != nil {
			logger.Error().Err(err).Str("file", salesPath).Msg("sales ledger not updated")
		}
	}

	if err := mercadinho.SaveCatalog(catalogPath, catalog); err != nil {
		logger.Error().Err(err).Str("file", catalogPath).Msg("catalog not saved")
	}

	if ticketDir != "" {
		writeTicket(p, receipt, ticketDir)
	}
	cart.Clear()
}

func writeTicket(p *prompter, receipt mercadinho.Receipt, dir string) {
	name := fmt.Sprintf("ticket_%s_%s.pdf", receipt.Day, time.Now().Format("150405"))
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("ticket not written")
		return
	}
	if err := pdf.Ticket(receipt, path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("ticket not written")
		return
	}
	p.printf("Ticket written to %s.\n", path)
}
