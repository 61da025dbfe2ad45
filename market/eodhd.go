// Package market fetches market data from eodhd.com and computes the
// derived metrics the analyst relies on.
package market

import (
	"fmt"
	"net/url"

	"github.com/autofin/autofin"
	"github.com/shopspring/decimal"
)

// Candle is one day of OHLCV data.
type Candle struct {
	Date   autofin.Date    `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume float64         `json:"volume"`
}

// History fetches the end-of-day candles for a ticker between two dates,
// bounds included. The EODHD ticker format is "SYMBOL.EXCHANGECODE";
// bare US symbols like "AAPL" work as "AAPL.US".
func History(apiKey, ticker string, from, to autofin.Date) ([]Candle, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(normalizeTicker(ticker)), apiKey, from, to)

	content := make([]Candle, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, err
	}
	return content, nil
}

// Fundamentals holds the subset of the EODHD fundamentals payload the
// analyst cares about. Missing figures stay nil.
type Fundamentals struct {
	PERatio       *float64
	MarketCap     *float64
	DividendYield *float64
	EPS           *float64
}

// FetchFundamentals fetches valuation highlights for a ticker.
func FetchFundamentals(apiKey, ticker string) (*Fundamentals, error) {
	// https://eodhd.com/api/fundamentals/AAPL.US?api_token=demo&fmt=json
	addr := fmt.Sprintf("https://eodhd.com/api/fundamentals/%s?fmt=json&api_token=%s&filter=Highlights",
		url.PathEscape(normalizeTicker(ticker)), apiKey)

	var highlights struct {
		PERatio              *float64 `json:"PERatio"`
		MarketCapitalization *float64 `json:"MarketCapitalization"`
		DividendYield        *float64 `json:"DividendYield"`
		EarningsShare        *float64 `json:"EarningsShare"`
	}
	if err := jwget(newDailyCachingClient(), addr, &highlights); err != nil {
		return nil, err
	}
	return &Fundamentals{
		PERatio:       highlights.PERatio,
		MarketCap:     highlights.MarketCapitalization,
		DividendYield: highlights.DividendYield,
		EPS:           highlights.EarningsShare,
	}, nil
}

// Headline is one news item about a ticker as returned by EODHD.
// The date is kept as the raw RFC3339 string from the API.
type Headline struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// FetchHeadlines fetches the most recent news headlines for a ticker.
func FetchHeadlines(apiKey, ticker string, limit int) ([]Headline, error) {
	// https://eodhd.com/api/news?s=AAPL.US&api_token=demo&fmt=json
	addr := fmt.Sprintf("https://eodhd.com/api/news?s=%s&limit=%d&fmt=json&api_token=%s",
		url.QueryEscape(normalizeTicker(ticker)), limit, apiKey)

	content := make([]Headline, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, err
	}
	return content, nil
}

// normalizeTicker appends the default US exchange to bare symbols.
func normalizeTicker(ticker string) string {
	for _, r := range ticker {
		if r == '.' {
			return ticker
		}
	}
	return ticker + ".US"
}
