package strategy

import (
	"fmt"

	"github.com/elijahgaraz/Forex-Scalper-Live/config"
	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/metrics"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

// Rejection reasons shared by the filter pipeline. These appear verbatim in
// hold comments, so downstream log tooling can match on them.
const (
	reasonInsufficientData = "insufficient data"
	reasonOutsideSession   = "outside trading session"
	reasonLowVolume        = "low volume"
	reasonWithinBuffer     = "within buffer zone"
)

// Strategy turns a market snapshot into a trading decision. Implementations
// other than Safe are stateless; Safe carries a one-way trailing-stop latch,
// so at most one Decide call may be in flight per instance.
type Strategy interface {
	Name() string
	Decide(data types.MarketData) types.Decision
}

// New builds a strategy by kind. The variant set is closed; cfg only applies
// to the safe scalper, the others run on fixed per-instance parameters.
func New(kind string, cfg config.SafeConfig, log logger.Logger) (Strategy, error) {
	switch kind {
	case "safe":
		return NewSafe(cfg, log)
	case "moderate":
		return NewModerate(log), nil
	case "aggressive":
		return NewAggressive(log), nil
	case "momentum":
		return NewMomentum(log), nil
	case "mean_reversion":
		return NewMeanReversion(log), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", kind)
	}
}

// base bundles the name, logger and decision-emission helpers shared by all
// strategy variants.
type base struct {
	name string
	log  logger.Logger
}

func (b *base) Name() string { return b.name }

// hold emits a rejection with the strategy name and the decisive reason.
func (b *base) hold(reason string) types.Decision {
	metrics.DecisionsTotal.WithLabelValues(b.name, string(types.Hold)).Inc()
	metrics.HoldReasons.WithLabelValues(b.name, reason).Inc()
	return types.HoldDecision(fmt.Sprintf("%s: %s", b.name, reason))
}

// trade emits a buy/sell decision and records it.
func (b *base) trade(action types.Action, comment string, sl, tp float64) types.Decision {
	metrics.DecisionsTotal.WithLabelValues(b.name, string(action)).Inc()
	b.log.Info("trade_signal",
		logger.String("strategy", b.name),
		logger.String("action", string(action)),
		logger.Float64("sl_offset", sl),
		logger.Float64("tp_offset", tp),
	)
	return types.TradeDecision(action, fmt.Sprintf("%s: %s", b.name, comment), sl, tp)
}
