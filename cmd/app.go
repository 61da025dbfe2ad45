package cmd

import (
	"flag"

	"github.com/autofin/autofin"
)

// As a CLI application it has a very short lived lifecycle, so it is ok
// to use global variables.

var portfolioFile = flag.String("p", "portfolio.jsonl", "Path to the portfolio file (JSONL format)")

// loadPortfolio loads the app portfolio file, empty if it doesn't exist.
func loadPortfolio() (*autofin.Portfolio, error) {
	return autofin.LoadPortfolio(*portfolioFile)
}

// loadConfig loads the .env backed configuration.
func loadConfig() (*autofin.Config, error) {
	return autofin.LoadConfig()
}
