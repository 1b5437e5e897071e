package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrandao/mercadinho"
	"github.com/ebrandao/mercadinho/date"
	"github.com/ebrandao/mercadinho/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	from string
	to   string
	by   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "aggregate sales over a date range" }
func (*reportCmd) Usage() string {
	return `report -from <date> [-to <date>] [-by name|id]

Aggregate the sales ledger over an inclusive date range. Grouping by name
folds the sales of renamed or renumbered products together; grouping by id
keeps them apart.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date, YYYY-MM-DD.")
	f.StringVar(&c.to, "to", "", "End date, YYYY-MM-DD (today when empty).")
	f.StringVar(&c.by, "by", "name", "Aggregation key, 'name' or 'id'.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to := date.Today()
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	key, err := mercadinho.ParseAggregationKey(c.by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -by: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := mercadinho.LoadSalesLedger(*salesFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report := ledger.Report(date.NewRange(from, to), key)
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
