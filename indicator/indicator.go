// Package indicator wraps go-talib so that every series keeps its input
// length and marks warm-up positions explicitly with NaN instead of talib's
// zero fill. Strategies only ever read the trailing value.
package indicator

import (
	"math"

	talib "github.com/markcheno/go-talib"
)

// EMA returns the exponential moving average of closes. Positions before the
// first full period are NaN.
func EMA(closes []float64, period int) []float64 {
	if len(closes) == 0 {
		return nil
	}
	if len(closes) < period {
		return allNaN(len(closes))
	}
	return nanPrefix(talib.Ema(closes, period), period-1)
}

// ATR returns the average true range: true range per bar, smoothed with a
// simple moving average over period. The first bar's true range is high-low
// (no previous close), so the value is defined from index period-1 on —
// exactly period bars suffice.
func ATR(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	if n == 0 {
		return nil
	}
	if n < period {
		return allNaN(n)
	}
	tr := make([]float64, n)
	tr[0] = highs[0] - lows[0]
	for i := 1; i < n; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	return nanPrefix(talib.Sma(tr, period), period-1)
}

// RollingMean is a simple moving average over window, NaN until the window
// fills. Used for the volume-spike baseline.
func RollingMean(vals []float64, window int) []float64 {
	if len(vals) == 0 {
		return nil
	}
	if len(vals) < window {
		return allNaN(len(vals))
	}
	return nanPrefix(talib.Sma(vals, window), window-1)
}

// Last returns the trailing value of a series, or NaN for an empty one.
func Last(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

// nanPrefix overwrites the first lookback positions with NaN. talib fills
// them with zeros, and a zero is indistinguishable from a real value.
func nanPrefix(series []float64, lookback int) []float64 {
	if lookback > len(series) {
		lookback = len(series)
	}
	for i := 0; i < lookback; i++ {
		series[i] = math.NaN()
	}
	return series
}

func allNaN(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
