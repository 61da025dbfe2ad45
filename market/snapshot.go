package market

import (
	"fmt"
	"log"
	"math"

	"github.com/autofin/autofin"
	"github.com/autofin/autofin/indicator"
)

// StockData is the processed view of a stock the analyst prompt is
// built from: latest price, trend metrics and fundamentals.
type StockData struct {
	Symbol         string
	CurrentPrice   float64
	PriceChange6M  float64 // percent over the history window
	AvgVolume      float64
	Volatility     float64 // daily returns stddev, percent
	MA50           float64
	MA200          float64
	RSI            float64
	PERatio        *float64
	MarketCap      *float64
	DividendYield  *float64
	EPS            *float64
}

// Snapshot fetches six months of history plus fundamentals for a symbol
// and derives the usual metrics. Missing fundamentals are not an error.
func Snapshot(apiKey, symbol string) (*StockData, []Candle, error) {
	to := autofin.Today()
	from := to.Add(-183)

	candles, err := History(apiKey, symbol, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching history for %s: %w", symbol, err)
	}
	if len(candles) == 0 {
		return nil, nil, fmt.Errorf("no price history for %s", symbol)
	}

	closes := make([]float64, len(candles))
	volumes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close.InexactFloat64()
		volumes[i] = c.Volume
	}

	data := &StockData{
		Symbol:        symbol,
		CurrentPrice:  closes[len(closes)-1],
		PriceChange6M: (closes[len(closes)-1] - closes[0]) / closes[0] * 100,
		AvgVolume:     mean(volumes),
		Volatility:    returnsStd(closes) * 100,
		MA50:          lastOf(indicator.SMA(closes, 50)),
		MA200:         lastOf(indicator.SMA(closes, 200)),
		RSI:           lastOf(indicator.RSI(closes, 14)),
	}

	// Fundamentals are best effort, the free tier does not always carry them.
	if fund, err := FetchFundamentals(apiKey, symbol); err == nil {
		data.PERatio = fund.PERatio
		data.MarketCap = fund.MarketCap
		data.DividendYield = fund.DividendYield
		data.EPS = fund.EPS
	} else {
		log.Printf("no fundamentals for %s: %v", symbol, err)
	}

	return data, candles, nil
}

// Series splits candles into the parallel slices indicators consume.
func Series(candles []Candle) (high, low, close, volume []float64) {
	high = make([]float64, len(candles))
	low = make([]float64, len(candles))
	close = make([]float64, len(candles))
	volume = make([]float64, len(candles))
	for i, c := range candles {
		high[i] = c.High.InexactFloat64()
		low[i] = c.Low.InexactFloat64()
		close[i] = c.Close.InexactFloat64()
		volume[i] = c.Volume
	}
	return high, low, close, volume
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// returnsStd is the sample standard deviation of daily returns.
func returnsStd(closes []float64) float64 {
	if len(closes) < 3 {
		return math.NaN()
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] != 0 {
			returns = append(returns, closes[i]/closes[i-1]-1)
		}
	}
	m := mean(returns)
	variance := 0.0
	for _, r := range returns {
		d := r - m
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(returns)-1))
}

func lastOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[len(values)-1]
}
