package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/autofin/autofin"
	"github.com/autofin/autofin/market"
	"github.com/autofin/autofin/renderer"
	"github.com/google/subcommands"
)

// rebalanceCmd checks the portfolio against the position-size policy.
type rebalanceCmd struct {
	maxSize float64
	minSize float64
	drift   float64
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "recommend adjustments to keep positions within policy" }
func (*rebalanceCmd) Usage() string {
	return `autofin rebalance [-max <weight>] [-min <weight>] [-drift <weight>]

  Refreshes the portfolio and prints prioritized recommendations for
  positions outside the configured bounds.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.maxSize, "max", autofin.DefaultPolicy.MaxPositionSize, "Maximum weight of a single position.")
	f.Float64Var(&c.minSize, "min", autofin.DefaultPolicy.MinPositionSize, "Minimum weight of a single position.")
	f.Float64Var(&c.drift, "drift", autofin.DefaultPolicy.DriftThreshold, "Deviation that triggers a rebalance.")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := p.Refresh(market.Quoter{APIKey: cfg.EodhdAPIKey}); err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	policy := autofin.RebalancePolicy{
		MaxPositionSize: c.maxSize,
		MinPositionSize: c.minSize,
		DriftThreshold:  c.drift,
	}
	recs := p.Rebalance(policy)
	printMarkdown(renderer.RenderRebalance(p, recs))
	return subcommands.ExitSuccess
}
