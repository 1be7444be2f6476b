package strategy

import (
	"time"

	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

// sessionNoon is squarely inside the default 08:00-16:00 window.
var sessionNoon = time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)

// flatBars builds n one-minute bars ending at end, each closing at price with
// a fixed high/low spread so the true range is exactly 2*halfRange.
func flatBars(n int, price, halfRange float64, end time.Time) []types.Bar {
	bars := make([]types.Bar, n)
	for i := range bars {
		bars[i] = types.Bar{
			Time:  end.Add(-time.Duration(n-1-i) * time.Minute),
			Open:  price,
			High:  price + halfRange,
			Low:   price - halfRange,
			Close: price,
		}
	}
	return bars
}

// snapWithLastClose is a flat series whose final bar closes at lastClose,
// keeping the same spread around the new close.
func snapWithLastClose(n int, price, halfRange, lastClose float64, end time.Time) *types.Snapshot {
	bars := flatBars(n, price, halfRange, end)
	last := &bars[n-1]
	last.Open = lastClose
	last.Close = lastClose
	last.High = lastClose + halfRange
	last.Low = lastClose - halfRange
	return &types.Snapshot{Bars: bars}
}

func marketData(s *types.Snapshot) types.MarketData {
	return types.MarketData{OHLC1M: s}
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
