package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/autofin/autofin/indicator"
	"github.com/autofin/autofin/market"
	"github.com/google/subcommands"
)

// fetchCmd displays the market snapshot for tickers, without the model.
type fetchCmd struct {
	indicators bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch and display market data for tickers" }
func (*fetchCmd) Usage() string {
	return `autofin fetch [-i] <ticker>...

  Fetches six months of market data from eodhd.com for each ticker and
  displays the derived metrics. With -i the technical indicators are
  shown as well.

  Requires the EODHD_API_KEY environment variable.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.indicators, "i", false, "Also compute and display technical indicators.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no tickers given")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cfg.RequireEodhd(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, ticker := range f.Args() {
		data, candles, err := market.Snapshot(cfg.EodhdAPIKey, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}

		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", ticker)
		fmt.Fprintf(&b, "| | |\n|---|---:|\n")
		fmt.Fprintf(&b, "| Price | %.2f |\n", data.CurrentPrice)
		fmt.Fprintf(&b, "| 6-month change | %.1f%% |\n", data.PriceChange6M)
		fmt.Fprintf(&b, "| Volatility | %.2f%% |\n", data.Volatility)
		fmt.Fprintf(&b, "| Average volume | %.0f |\n", data.AvgVolume)
		fmt.Fprintf(&b, "| MA50 | %.2f |\n", data.MA50)
		fmt.Fprintf(&b, "| MA200 | %.2f |\n", data.MA200)
		fmt.Fprintf(&b, "| RSI | %.1f |\n", data.RSI)
		writeOptional(&b, "P/E", data.PERatio)
		writeOptional(&b, "Dividend yield", data.DividendYield)
		writeOptional(&b, "EPS", data.EPS)

		if c.indicators {
			high, low, close, volume := market.Series(candles)
			report := indicator.NewReport(high, low, close, volume)
			fmt.Fprintf(&b, "\n## Indicators\n\n| | |\n|---|---:|\n")
			fmt.Fprintf(&b, "| MACD | %.4f |\n", report.MACD.MACD)
			fmt.Fprintf(&b, "| MACD signal | %.4f |\n", report.MACD.Signal)
			fmt.Fprintf(&b, "| MACD histogram | %.4f |\n", report.MACD.Histogram)
			fmt.Fprintf(&b, "| Bollinger upper | %.2f |\n", report.Bollinger.Upper)
			fmt.Fprintf(&b, "| Bollinger middle | %.2f |\n", report.Bollinger.Middle)
			fmt.Fprintf(&b, "| Bollinger lower | %.2f |\n", report.Bollinger.Lower)
			fmt.Fprintf(&b, "| Stochastic %%K | %.1f |\n", report.Stochastic.K)
			fmt.Fprintf(&b, "| Stochastic %%D | %.1f |\n", report.Stochastic.D)
			fmt.Fprintf(&b, "| OBV | %.0f |\n", report.OBV)
			fmt.Fprintf(&b, "| ATR | %.2f |\n", report.ATR)
		}

		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}

func writeOptional(b *strings.Builder, label string, v *float64) {
	if v == nil {
		return
	}
	fmt.Fprintf(b, "| %s | %.2f |\n", label, *v)
}
