package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/autofin/autofin/market"
	"github.com/autofin/autofin/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd displays the refreshed portfolio summary.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the portfolio with live values" }
func (*portfolioCmd) Usage() string {
	return `autofin portfolio [-p <file>]

  Loads the portfolio file, refreshes every position with a live quote
  and displays values, profit and weights.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cfg.RequireEodhd(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	if len(p.Positions) == 0 {
		fmt.Printf("Portfolio %q is empty.\n", *portfolioFile)
		return subcommands.ExitSuccess
	}

	if err := p.Refresh(market.Quoter{APIKey: cfg.EodhdAPIKey}); err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderPortfolio(p))
	return subcommands.ExitSuccess
}
