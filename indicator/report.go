package indicator

import "math"

// Report gathers the latest value of each indicator, the shape the
// analyst prompt consumes.
type Report struct {
	MACD struct {
		MACD      float64 `json:"macd"`
		Signal    float64 `json:"signal"`
		Histogram float64 `json:"histogram"`
	} `json:"macd"`
	Bollinger struct {
		Upper  float64 `json:"upper"`
		Middle float64 `json:"middle"`
		Lower  float64 `json:"lower"`
	} `json:"bollinger_bands"`
	Stochastic struct {
		K float64 `json:"k_line"`
		D float64 `json:"d_line"`
	} `json:"stochastic"`
	OBV       float64            `json:"obv"`
	ATR       float64            `json:"atr"`
	Fibonacci map[string]float64 `json:"fibonacci"`
}

// NewReport runs every indicator over the OHLCV series and keeps the
// latest values. Fibonacci levels use the high/low of the last 20 days.
func NewReport(high, low, close, volume []float64) *Report {
	r := &Report{}
	if len(close) == 0 {
		return r
	}

	macd, signal, histogram := MACD(close, 12, 26, 9)
	r.MACD.MACD = last(macd)
	r.MACD.Signal = last(signal)
	r.MACD.Histogram = last(histogram)

	upper, middle, lower := Bollinger(close, 20, 2)
	r.Bollinger.Upper = last(upper)
	r.Bollinger.Middle = last(middle)
	r.Bollinger.Lower = last(lower)

	k, d := Stochastic(high, low, close, 14, 3)
	r.Stochastic.K = last(k)
	r.Stochastic.D = last(d)

	r.OBV = last(OBV(close, volume))
	r.ATR = last(ATR(high, low, close, 14))

	recentHigh := math.Inf(-1)
	recentLow := math.Inf(1)
	start := len(close) - 20
	if start < 0 {
		start = 0
	}
	for i := start; i < len(close); i++ {
		recentHigh = math.Max(recentHigh, high[i])
		recentLow = math.Min(recentLow, low[i])
	}
	r.Fibonacci = Fibonacci(recentHigh, recentLow)

	return r
}

func last(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[len(values)-1]
}
