package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/autofin/autofin/market"
	"github.com/autofin/autofin/news"
	"github.com/google/subcommands"
)

// newsCmd displays recent headlines and their sentiment for a ticker.
type newsCmd struct {
	limit int
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "display recent news and sentiment for a ticker" }
func (*newsCmd) Usage() string {
	return `autofin news [-n <count>] <ticker>

  Fetches the most recent headlines about the ticker, scores each one
  and displays the aggregated sentiment.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Maximum number of headlines to display.")
}

func (c *newsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker expected")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cfg.RequireEodhd(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	headlines, err := market.FetchHeadlines(cfg.EodhdAPIKey, ticker, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching news for %s: %v\n", ticker, err)
		return subcommands.ExitFailure
	}
	if len(headlines) == 0 {
		fmt.Printf("No recent news for %s.\n", ticker)
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s news\n\n", ticker)
	titles := make([]string, len(headlines))
	for i, h := range headlines {
		titles[i] = h.Title
		s := news.Analyze(h.Title)
		fmt.Fprintf(&b, "- %s (%s, %+.2f) %s\n", h.Title, s.Label, s.Score, h.Date)
	}

	agg := news.Aggregated(titles)
	fmt.Fprintf(&b, "\nOverall sentiment: **%s** (average %+.2f, %d positive / %d neutral / %d negative)\n",
		agg.Overall(), agg.AverageScore,
		agg.Distribution["positive"], agg.Distribution["neutral"], agg.Distribution["negative"])

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
