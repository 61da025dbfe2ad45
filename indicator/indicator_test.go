package indicator

import (
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSMA(t *testing.T) {
	got := SMA([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{math.NaN(), math.NaN(), 2, 3, 4}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(got[i]) {
				t.Errorf("SMA[%d] = %v, want NaN", i, got[i])
			}
			continue
		}
		if !almost(got[i], want[i]) {
			t.Errorf("SMA[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSMAShortSeries(t *testing.T) {
	got := SMA([]float64{1, 2}, 5)
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("SMA[%d] = %v, want NaN for a series shorter than the window", i, v)
		}
	}
}

func TestEMA(t *testing.T) {
	// span 3 means alpha = 0.5: seeded with the first value.
	got := EMA([]float64{1, 3}, 3)
	if !almost(got[0], 1) || !almost(got[1], 2) {
		t.Errorf("EMA = %v, want [1 2]", got)
	}

	// A constant series stays constant.
	for _, v := range EMA([]float64{7, 7, 7, 7}, 5) {
		if !almost(v, 7) {
			t.Errorf("EMA of a constant series drifted to %v", v)
		}
	}
}

func TestRSI(t *testing.T) {
	up := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	got := RSI(up, 5)
	if !almost(got[len(got)-1], 100) {
		t.Errorf("RSI of a rising series = %v, want 100", got[len(got)-1])
	}

	down := []float64{8, 7, 6, 5, 4, 3, 2, 1}
	got = RSI(down, 5)
	if !almost(got[len(got)-1], 0) {
		t.Errorf("RSI of a falling series = %v, want 0", got[len(got)-1])
	}

	// Not enough data leaves everything NaN.
	for _, v := range RSI([]float64{1, 2, 3}, 14) {
		if !math.IsNaN(v) {
			t.Errorf("RSI on a short series = %v, want NaN", v)
		}
	}
}

func TestMACDConstant(t *testing.T) {
	prices := []float64{5, 5, 5, 5, 5, 5}
	macd, signal, hist := MACD(prices, 2, 3, 2)
	for i := range prices {
		if !almost(macd[i], 0) || !almost(signal[i], 0) || !almost(hist[i], 0) {
			t.Errorf("MACD of a constant series at %d = (%v, %v, %v), want zeros",
				i, macd[i], signal[i], hist[i])
		}
	}
}

func TestBollinger(t *testing.T) {
	upper, middle, lower := Bollinger([]float64{1, 2, 3}, 3, 2)
	// mean 2, sample std 1.
	if !almost(middle[2], 2) {
		t.Errorf("middle = %v, want 2", middle[2])
	}
	if !almost(upper[2], 4) {
		t.Errorf("upper = %v, want 4", upper[2])
	}
	if !almost(lower[2], 0) {
		t.Errorf("lower = %v, want 0", lower[2])
	}
	if !math.IsNaN(upper[0]) || !math.IsNaN(upper[1]) {
		t.Error("bands before the window should be NaN")
	}
}

func TestStochastic(t *testing.T) {
	high := []float64{10, 11, 12}
	low := []float64{8, 9, 10}
	close := []float64{9, 10, 12}
	k, _ := Stochastic(high, low, close, 3, 1)
	// close equals the period high: %K is 100.
	if !almost(k[2], 100) {
		t.Errorf("%%K = %v, want 100", k[2])
	}

	close = []float64{9, 10, 8}
	k, _ = Stochastic(high, low, close, 3, 1)
	if !almost(k[2], 0) {
		t.Errorf("%%K = %v, want 0", k[2])
	}
}

func TestOBV(t *testing.T) {
	close := []float64{10, 11, 10, 10}
	volume := []float64{100, 50, 30, 20}
	got := OBV(close, volume)
	want := []float64{100, 150, 120, 120}
	for i := range want {
		if !almost(got[i], want[i]) {
			t.Errorf("OBV[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestATR(t *testing.T) {
	// Constant 2-point range with the close centered: the true range
	// is 2 every day, so the average is 2.
	high := []float64{11, 11, 11, 11}
	low := []float64{9, 9, 9, 9}
	close := []float64{10, 10, 10, 10}
	got := ATR(high, low, close, 3)
	if !almost(got[3], 2) {
		t.Errorf("ATR = %v, want 2", got[3])
	}
}

func TestFibonacci(t *testing.T) {
	levels := Fibonacci(2, 1)
	if !almost(levels["0.0"], 1) || !almost(levels["1.0"], 2) {
		t.Errorf("end levels = %v, want 1 and 2", levels)
	}
	if !almost(levels["0.5"], 1.5) {
		t.Errorf("mid level = %v, want 1.5", levels["0.5"])
	}
	if !almost(levels["0.618"], 1.618) {
		t.Errorf("golden level = %v, want 1.618", levels["0.618"])
	}
}
