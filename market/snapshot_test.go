package market

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func candle(o, h, l, c float64, v float64) Candle {
	return Candle{
		Open:   decimal.NewFromFloat(o),
		High:   decimal.NewFromFloat(h),
		Low:    decimal.NewFromFloat(l),
		Close:  decimal.NewFromFloat(c),
		Volume: v,
	}
}

func TestSeries(t *testing.T) {
	candles := []Candle{
		candle(10, 11, 9, 10.5, 100),
		candle(10.5, 12, 10, 11, 200),
	}
	high, low, close, volume := Series(candles)
	if len(high) != 2 || high[1] != 12 {
		t.Errorf("high = %v", high)
	}
	if low[0] != 9 || close[0] != 10.5 || volume[1] != 200 {
		t.Errorf("series mismatch: low=%v close=%v volume=%v", low, close, volume)
	}
}

func TestMean(t *testing.T) {
	if got := mean([]float64{1, 2, 3}); got != 2 {
		t.Errorf("mean = %v, want 2", got)
	}
	if got := mean(nil); !math.IsNaN(got) {
		t.Errorf("mean of nothing = %v, want NaN", got)
	}
}

func TestReturnsStd(t *testing.T) {
	// Returns are +10% then -10%: mean 0, sample variance 0.02.
	got := returnsStd([]float64{100, 110, 99})
	want := math.Sqrt(0.02)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("returnsStd = %v, want %v", got, want)
	}

	// A constant series has zero volatility.
	if got := returnsStd([]float64{50, 50, 50, 50}); got != 0 {
		t.Errorf("returnsStd of a flat series = %v, want 0", got)
	}

	// Too short to estimate.
	if got := returnsStd([]float64{100, 101}); !math.IsNaN(got) {
		t.Errorf("returnsStd of two points = %v, want NaN", got)
	}
}
