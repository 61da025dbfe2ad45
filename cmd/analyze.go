package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/autofin/autofin/agent"
	"github.com/autofin/autofin/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	tickers   string
	timeframe string
	risk      string
	noNews    bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run a structured analysis of one or more stocks" }
func (*analyzeCmd) Usage() string {
	return `autofin analyze -t <tickers> [-timeframe <tf>] [-risk <level>]

  Analyzes each ticker: market data, technical indicators and news
  sentiment are gathered and handed to the model, which returns a
  validated BUY/HOLD/SELL report with price targets.

Usage Examples:
$ autofin analyze -t AAPL
$ autofin analyze -t AAPL,MSFT -timeframe long -risk conservative
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Comma-separated list of stock tickers to analyze.")
	f.StringVar(&c.timeframe, "timeframe", "medium", "Investment timeframe: short, medium or long.")
	f.StringVar(&c.risk, "risk", "moderate", "Risk tolerance: conservative, moderate or aggressive.")
	f.BoolVar(&c.noNews, "no-news", false, "Skip news gathering and sentiment.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tickers == "" {
		fmt.Fprintln(os.Stderr, "Error: no tickers given, use -t")
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
	if err := cfg.RequireGemini(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, ticker := range strings.Split(c.tickers, ",") {
		ticker = strings.TrimSpace(ticker)
		if ticker == "" {
			continue
		}
		fmt.Fprintf(os.Stderr, "Analyzing %s...\n", ticker)

		req := agent.NewRequest(ticker)
		req.Timeframe = c.timeframe
		req.RiskTolerance = c.risk
		req.IncludeNews = !c.noNews

		analysis, err := agent.Analyze(ctx, client, cfg, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error analyzing %s: %v\n", ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		printMarkdown(renderer.RenderAnalysis(analysis))
	}
	return status
}
