package strategy

import (
	"github.com/elijahgaraz/Forex-Scalper-Live/indicator"
	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

// Momentum fades over-extensions: when price has stretched more than
// fadeThreshold ATRs away from the EMA it takes the opposite side.
type Momentum struct {
	base
	emaPeriod     int
	atrPeriod     int
	fadeThreshold float64 // ATR multiples
	stopMult      float64
	targetMult    float64
}

func NewMomentum(log logger.Logger) *Momentum {
	return &Momentum{
		base:          base{name: "Momentum Fade Scalper", log: log},
		emaPeriod:     20,
		atrPeriod:     14,
		fadeThreshold: 1.5,
		stopMult:      1.0,
		targetMult:    1.5,
	}
}

func (m *Momentum) Decide(data types.MarketData) types.Decision {
	snap := data.OHLC1M
	if snap == nil || snap.Len() < m.emaPeriod {
		return m.hold(reasonInsufficientData)
	}

	closes := snap.Closes()
	ema := indicator.Last(indicator.EMA(closes, m.emaPeriod))
	atr := indicator.Last(indicator.ATR(snap.Highs(), snap.Lows(), closes, m.atrPeriod))
	price := closes[len(closes)-1]
	diff := price - ema

	switch {
	case diff > atr*m.fadeThreshold:
		return m.trade(types.Sell, "fading overextension", atr*m.stopMult, atr*m.targetMult)
	case diff < -atr*m.fadeThreshold:
		return m.trade(types.Buy, "fading downside spike", atr*m.stopMult, atr*m.targetMult)
	default:
		return m.hold("no fade opportunity")
	}
}
