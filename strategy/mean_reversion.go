package strategy

import (
	"github.com/elijahgaraz/Forex-Scalper-Live/indicator"
	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

// MeanReversion trades back toward the EMA from outside an ATR band: sell
// above the upper band, buy below the lower one.
type MeanReversion struct {
	base
	emaPeriod      int
	atrPeriod      int
	bandMultiplier float64 // ATR multiples
	stopMult       float64
	targetMult     float64
}

func NewMeanReversion(log logger.Logger) *MeanReversion {
	return &MeanReversion{
		base:           base{name: "Mean-Reversion Scalper", log: log},
		emaPeriod:      20,
		atrPeriod:      14,
		bandMultiplier: 2.0,
		stopMult:       1.0,
		targetMult:     2.0,
	}
}

func (m *MeanReversion) Decide(data types.MarketData) types.Decision {
	snap := data.OHLC1M
	if snap == nil || snap.Len() < m.emaPeriod {
		return m.hold(reasonInsufficientData)
	}

	closes := snap.Closes()
	ema := indicator.Last(indicator.EMA(closes, m.emaPeriod))
	atr := indicator.Last(indicator.ATR(snap.Highs(), snap.Lows(), closes, m.atrPeriod))
	price := closes[len(closes)-1]
	upper := ema + atr*m.bandMultiplier
	lower := ema - atr*m.bandMultiplier

	switch {
	case price > upper:
		return m.trade(types.Sell, "price above upper band", atr*m.stopMult, atr*m.targetMult)
	case price < lower:
		return m.trade(types.Buy, "price below lower band", atr*m.stopMult, atr*m.targetMult)
	default:
		return m.hold("within bands")
	}
}
