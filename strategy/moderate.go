package strategy

import (
	"github.com/elijahgaraz/Forex-Scalper-Live/indicator"
	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

// Moderate is a stateless trend follower: long above the EMA, short below,
// wider stops than the safe scalper.
type Moderate struct {
	base
	emaPeriod  int
	atrPeriod  int
	stopMult   float64
	targetMult float64
}

func NewModerate(log logger.Logger) *Moderate {
	return &Moderate{
		base:       base{name: "Moderate Trend-Following Scalper", log: log},
		emaPeriod:  20,
		atrPeriod:  14,
		stopMult:   1.5,
		targetMult: 1.0,
	}
}

func (m *Moderate) Decide(data types.MarketData) types.Decision {
	snap := data.OHLC1M
	if snap == nil || snap.Len() < m.emaPeriod {
		return m.hold(reasonInsufficientData)
	}

	closes := snap.Closes()
	ema := indicator.Last(indicator.EMA(closes, m.emaPeriod))
	atr := indicator.Last(indicator.ATR(snap.Highs(), snap.Lows(), closes, m.atrPeriod))
	price := closes[len(closes)-1]

	switch {
	case price > ema:
		return m.trade(types.Buy, "bullish trend detected", atr*m.stopMult, atr*m.targetMult)
	case price < ema:
		return m.trade(types.Sell, "bearish trend detected", atr*m.stopMult, atr*m.targetMult)
	default:
		return m.hold("no clear trend")
	}
}
