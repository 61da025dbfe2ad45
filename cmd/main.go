// Package cmd implements the CLI application to analyze stocks and
// manage a portfolio.
package cmd

import (
	"github.com/google/subcommands"
)

// Register registers the subcommands. A main package calls Register()
// and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&fetchCmd{}, "analysis")
	c.Register(&newsCmd{}, "analysis")

	c.Register(&portfolioCmd{}, "portfolio")
	c.Register(&rebalanceCmd{}, "portfolio")

	c.Register(&collectCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// Names returns the names of all subcommands, for shell completion.
func Names() []string {
	return []string{
		"analyze", "fetch", "news",
		"portfolio", "rebalance",
		"collect", "assist", "topic",
	}
}
