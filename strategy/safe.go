package strategy

import (
	"fmt"
	"math"

	"github.com/elijahgaraz/Forex-Scalper-Live/config"
	"github.com/elijahgaraz/Forex-Scalper-Live/indicator"
	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/metrics"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

const safeName = "Safe (Low-Risk) Trend-Following Scalper"

// breakevenFactor sizes the small profit cushion (in ATR multiples) kept when
// the trailing stop ratchets toward the previous close.
const breakevenFactor = 0.1

// Safe is the low-risk trend-following scalper. Each decision runs a filter
// pipeline (data sufficiency, session window, volume spike, EMA buffer zone)
// and only then derives direction and ATR-based stop/target offsets.
//
// The trailing-stop latch is the only state carried between calls: it arms
// once price extends two buffer-widths past the EMA and never disarms for
// the lifetime of the instance. While armed, the stop offset is tightened
// toward breakeven on every decision, which can legitimately drive it
// negative (a stop in profit). Not safe for concurrent Decide calls; give
// each symbol its own instance or serialize externally.
type Safe struct {
	base
	cfg config.SafeConfig

	trailingActivated bool
}

// NewSafe validates cfg and returns a ready strategy instance.
func NewSafe(cfg config.SafeConfig, log logger.Logger) (*Safe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Safe{
		base: base{name: safeName, log: log},
		cfg:  cfg,
	}, nil
}

// TrailingActivated reports whether the one-way trailing latch has armed.
func (s *Safe) TrailingActivated() bool { return s.trailingActivated }

// Decide re-evaluates the full pipeline against the latest snapshot.
func (s *Safe) Decide(data types.MarketData) types.Decision {
	snap := data.OHLC1M
	minBars := s.cfg.EMAPeriod
	if s.cfg.ATRPeriod > minBars {
		minBars = s.cfg.ATRPeriod
	}
	// Both indicators need that many trailing bars for a defined value at
	// the last index; the gate opens at the exact minimum.
	if snap == nil || snap.Len() < minBars {
		return s.hold(reasonInsufficientData)
	}

	if !s.cfg.Session.Contains(snap.Last().Time) {
		return s.hold(reasonOutsideSession)
	}

	closes := snap.Closes()
	ema := indicator.Last(indicator.EMA(closes, s.cfg.EMAPeriod))
	atr := indicator.Last(indicator.ATR(snap.Highs(), snap.Lows(), closes, s.cfg.ATRPeriod))
	price := closes[len(closes)-1]

	// Volume spike filter: require current volume >= multiplier x rolling
	// average. Missing volume data or an undefined/zero average skips the
	// filter entirely; it must never reject on absent data.
	if snap.HasVolume() {
		avgVol := indicator.Last(indicator.RollingMean(snap.Volumes, s.cfg.ATRPeriod))
		if !math.IsNaN(avgVol) && avgVol > 0 && snap.Volumes[len(snap.Volumes)-1] < avgVol*s.cfg.VolumeMult {
			return s.hold(reasonLowVolume)
		}
	}

	// Buffer zone around the EMA to avoid whipsaws.
	buffer := atr * s.cfg.BufferMult
	if math.Abs(price-ema) < buffer {
		return s.hold(reasonWithinBuffer)
	}

	var action types.Action
	var comment string
	if price > ema {
		action = types.Buy
		comment = fmt.Sprintf("price %.5f above EMA%d + buffer", price, s.cfg.EMAPeriod)
	} else {
		action = types.Sell
		comment = fmt.Sprintf("price %.5f below EMA%d - buffer", price, s.cfg.EMAPeriod)
	}

	sl := atr * s.cfg.StopMult
	tp := atr * s.cfg.TargetMult

	// Arm the trailing stop once price moves well beyond the buffer. The
	// latch is one-way: it never re-arms or resets for this instance.
	if !s.trailingActivated &&
		((action == types.Buy && price > ema+2*buffer) ||
			(action == types.Sell && price < ema-2*buffer)) {
		s.trailingActivated = true
		comment += "; trailing stop activated"
		metrics.TrailingStopsArmed.WithLabelValues(s.name).Inc()
		s.log.Info("trailing_stop_armed",
			logger.String("strategy", s.name),
			logger.Float64("price", price),
			logger.Float64("ema", ema),
		)
	}

	// While armed, ratchet the stop toward breakeven-or-better. prevClose
	// is in range because Validate requires max(EMAPeriod, ATRPeriod) >= 2
	// and the data gate has already passed.
	if s.trailingActivated {
		breakevenOffset := atr * breakevenFactor
		prevClose := closes[len(closes)-2]
		if action == types.Buy {
			sl = math.Min(sl, price-(prevClose+breakevenOffset))
		} else {
			sl = math.Min(sl, (prevClose-breakevenOffset)-price)
		}
	}

	return s.trade(action, comment, sl, tp)
}
