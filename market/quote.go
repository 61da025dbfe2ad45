package market

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// LatestQuote returns the last traded price for a ticker, trying the
// intraday EODHD endpoint first and falling back to the Tradegate feed
// for European listings.
func LatestQuote(apiKey, ticker string) (float64, error) {
	client := new(http.Client)
	price, err := eodhdLive(client, apiKey, ticker)
	if err == nil {
		return price, nil
	}
	log.Printf("live quote for %s failed (%v), trying tradegate", ticker, err)
	return tradegateLatest(client, ticker)
}

// eodhdLive queries the real-time endpoint. The payload is small and
// irregular so it is navigated with jsonpath rather than a typed struct.
func eodhdLive(client *http.Client, apiKey, ticker string) (float64, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", normalizeTicker(ticker), apiKey)

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", ticker, err)
	}

	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q not a float %v", ticker, path, jval)
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty quote for %s", ticker)
	}
	return val, nil
}

// tradegateLatest fetches the last transaction from Tradegate. The
// ticker must be an ISIN for this feed.
func tradegateLatest(client *http.Client, isin string) (float64, error) {
	addr := "https://www.tradegate.de/refresh.php?isin=" + isin

	var jobj map[string]any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", isin, err)
	}

	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	jval := jobj["last"]
	if s, ok := jval.(string); ok && s == "./." {
		// tradegate shows an empty last this way, use the bid instead
		log.Println("'last' is empty, falling back to 'bid'")
		jval = jobj["bid"]
	}
	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("cannot read value from %q: neither a float nor a string", isin)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		var err error
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("cannot read value from %q: invalid string %q: %w", isin, sval, err)
		}
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty bid for %s: bidsize=%v", isin, jobj["bidsize"])
	}
	return val, nil
}

// Quoter adapts LatestQuote to the autofin.Quoter interface.
type Quoter struct {
	APIKey string
}

func (q Quoter) Quote(symbol string) (float64, error) {
	return LatestQuote(q.APIKey, symbol)
}
