// Package cmd implements the subcommands and interactive menus of the two
// store programs: admin (catalog administration and sales reports) and
// caixa (point of sale).
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// As short-lived CLI programs, package-level flags and a package-level
// logger are fine here.

var (
	catalogFile = flag.String("produtos", "produtos.txt", "Path to the product catalog file")
	salesFile   = flag.String("vendas", "vendas.txt", "Path to the sales ledger file")
)

// logger writes operational diagnostics to stderr, keeping stdout clean for
// prompts and rendered output.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// RegisterAdmin registers the catalog administration commands.
func RegisterAdmin(c *subcommands.Commander) {
	c.Register(&adminMenuCmd{}, "")

	c.Register(&addCmd{}, "catalog")
	c.Register(&updateCmd{}, "catalog")
	c.Register(&deleteCmd{}, "catalog")
	c.Register(&stockCmd{}, "catalog")
	c.Register(&listCmd{}, "catalog")

	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// RegisterPOS registers the point-of-sale commands.
func RegisterPOS(c *subcommands.Commander) {
	c.Register(&posMenuCmd{}, "")

	c.Register(&saleCmd{}, "sales")

	c.Register(&topicCmd{}, "documentation")
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
