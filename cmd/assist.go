package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/autofin/autofin/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the interactive AI assistant.
type assistCmd struct {
	codebase string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `autofin assist [question...]

  Start an interactive session with the AI assistant. The assistant
  delegates to a market researcher grounded in Google Search and to a
  quantitative analyst with live market data tools.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.codebase, "codebase", ".", "Root directory for the read_codebase tool.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var initialPrompts []string
	if f.NArg() > 0 {
		initialPrompts = append(initialPrompts, strings.Join(f.Args(), " "))
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
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

	researcher := agent.NewResearcher(cfg.ModelName)
	analyst := agent.NewAnalyst(cfg.ModelName, &agent.Tools{
		EodhdAPIKey: cfg.EodhdAPIKey,
		CodebaseDir: c.codebase,
	})
	a := agent.New(os.Stdout, os.Stdin, cfg.ModelName, researcher, analyst)

	if err := a.Run(ctx, client, initialPrompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
