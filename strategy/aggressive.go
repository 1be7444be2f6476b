package strategy

import (
	"github.com/elijahgaraz/Forex-Scalper-Live/indicator"
	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

// Aggressive trades the same trend rule as Moderate but on a much faster
// EMA/ATR pair with wider offsets.
type Aggressive struct {
	base
	emaPeriod  int
	atrPeriod  int
	stopMult   float64
	targetMult float64
}

func NewAggressive(log logger.Logger) *Aggressive {
	return &Aggressive{
		base:       base{name: "Aggressive Trend-Following Scalper", log: log},
		emaPeriod:  10,
		atrPeriod:  7,
		stopMult:   2.0,
		targetMult: 1.5,
	}
}

func (a *Aggressive) Decide(data types.MarketData) types.Decision {
	snap := data.OHLC1M
	if snap == nil || snap.Len() < a.emaPeriod {
		return a.hold(reasonInsufficientData)
	}

	closes := snap.Closes()
	ema := indicator.Last(indicator.EMA(closes, a.emaPeriod))
	atr := indicator.Last(indicator.ATR(snap.Highs(), snap.Lows(), closes, a.atrPeriod))
	price := closes[len(closes)-1]

	switch {
	case price > ema:
		return a.trade(types.Buy, "going long aggressively", atr*a.stopMult, atr*a.targetMult)
	case price < ema:
		return a.trade(types.Sell, "going short aggressively", atr*a.stopMult, atr*a.targetMult)
	default:
		return a.hold("awaiting breakout")
	}
}
