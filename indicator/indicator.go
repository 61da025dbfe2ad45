// Package indicator computes the usual technical analysis indicators
// over daily price series.
package indicator

import "math"

// SMA returns the simple moving average of the last window values at
// each point. The first window-1 points are NaN.
func SMA(values []float64, window int) []float64 {
	out := nans(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA returns the exponential moving average with the given span,
// seeded from the first value.
func EMA(values []float64, span int) []float64 {
	out := nans(len(values))
	if span <= 0 || len(values) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// RSI returns the relative strength index over the given period,
// using simple moving averages of gains and losses.
func RSI(prices []float64, period int) []float64 {
	out := nans(len(prices))
	if period <= 0 || len(prices) <= period {
		return out
	}
	gains := make([]float64, len(prices))
	losses := make([]float64, len(prices))
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}
	avgGain := SMA(gains[1:], period)
	avgLoss := SMA(losses[1:], period)
	for i := period; i < len(prices); i++ {
		g, l := avgGain[i-1], avgLoss[i-1]
		if l == 0 {
			out[i] = 100
			continue
		}
		rs := g / l
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

// MACD returns the moving average convergence divergence line, its
// signal line and the histogram.
func MACD(prices []float64, fast, slow, signal int) (macd, signalLine, histogram []float64) {
	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)
	macd = make([]float64, len(prices))
	for i := range prices {
		macd[i] = fastEMA[i] - slowEMA[i]
	}
	signalLine = EMA(macd, signal)
	histogram = make([]float64, len(prices))
	for i := range prices {
		histogram[i] = macd[i] - signalLine[i]
	}
	return macd, signalLine, histogram
}

// Bollinger returns the upper, middle and lower Bollinger bands for the
// given window and number of standard deviations.
func Bollinger(prices []float64, window int, numStd float64) (upper, middle, lower []float64) {
	middle = SMA(prices, window)
	std := rollingStd(prices, window)
	upper = nans(len(prices))
	lower = nans(len(prices))
	for i := range prices {
		if !math.IsNaN(middle[i]) && !math.IsNaN(std[i]) {
			upper[i] = middle[i] + std[i]*numStd
			lower[i] = middle[i] - std[i]*numStd
		}
	}
	return upper, middle, lower
}

// Stochastic returns the %K and %D lines of the stochastic oscillator.
func Stochastic(high, low, close []float64, kPeriod, dPeriod int) (k, d []float64) {
	n := len(close)
	k = nans(n)
	for i := kPeriod - 1; i < n; i++ {
		lowest := math.Inf(1)
		highest := math.Inf(-1)
		for j := i - kPeriod + 1; j <= i; j++ {
			lowest = math.Min(lowest, low[j])
			highest = math.Max(highest, high[j])
		}
		if highest != lowest {
			k[i] = 100 * (close[i] - lowest) / (highest - lowest)
		}
	}
	d = SMA(k, dPeriod)
	return k, d
}

// OBV returns the on-balance volume series.
func OBV(close, volume []float64) []float64 {
	out := make([]float64, len(close))
	if len(close) == 0 {
		return out
	}
	out[0] = volume[0]
	for i := 1; i < len(close); i++ {
		switch {
		case close[i] > close[i-1]:
			out[i] = out[i-1] + volume[i]
		case close[i] < close[i-1]:
			out[i] = out[i-1] - volume[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out
}

// ATR returns the average true range over the given period.
func ATR(high, low, close []float64, period int) []float64 {
	n := len(close)
	tr := make([]float64, n)
	for i := range tr {
		tr[i] = high[i] - low[i]
		if i > 0 {
			tr[i] = math.Max(tr[i], math.Abs(high[i]-close[i-1]))
			tr[i] = math.Max(tr[i], math.Abs(low[i]-close[i-1]))
		}
	}
	return SMA(tr, period)
}

// Fibonacci returns the standard retracement levels between a low and a
// high price, keyed by ratio.
func Fibonacci(high, low float64) map[string]float64 {
	diff := high - low
	return map[string]float64{
		"0.0":   low,
		"0.236": low + diff*0.236,
		"0.382": low + diff*0.382,
		"0.5":   low + diff*0.5,
		"0.618": low + diff*0.618,
		"0.786": low + diff*0.786,
		"1.0":   high,
	}
}

// rollingStd is the rolling sample standard deviation over a window.
func rollingStd(values []float64, window int) []float64 {
	out := nans(len(values))
	if window <= 1 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += values[j]
		}
		mean /= float64(window)
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := values[j] - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(window-1))
	}
	return out
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
