package config

import (
	"errors"
	"fmt"

	"github.com/elijahgaraz/Forex-Scalper-Live/session"
)

// SafeConfig holds all tunable parameters for the Safe (low-risk) scalper.
// Instances are immutable after construction; the per-instance defaults are
// the production values the strategy ships with.
type SafeConfig struct {
	// Trend & volatility settings
	EMAPeriod  int     // default 50
	ATRPeriod  int     // default 14
	StopMult   float64 // stop-loss distance, ATR multiples; default 1.0
	TargetMult float64 // take-profit distance, ATR multiples; default 0.5
	BufferMult float64 // no-trade zone around the EMA, ATR multiples; default 0.2
	VolumeMult float64 // volume-spike threshold vs. rolling average; default 1.5

	// Trading session window, inclusive bounds
	Session session.Window
}

// DefaultSafeConfig returns the stock parameter set (EMA50/ATR14, 08:00-16:00).
func DefaultSafeConfig() SafeConfig {
	return SafeConfig{
		EMAPeriod:  50,
		ATRPeriod:  14,
		StopMult:   1.0,
		TargetMult: 0.5,
		BufferMult: 0.2,
		VolumeMult: 1.5,
		Session: session.Window{
			Start: session.MustParse("08:00"),
			End:   session.MustParse("16:00"),
		},
	}
}

// Validate checks that all fields are within sensible bounds. It returns the
// first encountered error so a configuration problem surfaces before any
// decision is made.
func (c *SafeConfig) Validate() error {
	if c.EMAPeriod <= 0 {
		return errors.New("EMAPeriod must be positive")
	}
	if c.ATRPeriod <= 0 {
		return errors.New("ATRPeriod must be positive")
	}
	// The trailing-stop ratchet reads the second-to-last close. The data
	// gate only guarantees max(EMAPeriod, ATRPeriod) bars, so that maximum
	// must cover two bars.
	if c.EMAPeriod < 2 && c.ATRPeriod < 2 {
		return errors.New("max(EMAPeriod, ATRPeriod) must be at least 2")
	}
	if c.StopMult <= 0 {
		return fmt.Errorf("StopMult (%f) must be positive", c.StopMult)
	}
	if c.TargetMult <= 0 {
		return fmt.Errorf("TargetMult (%f) must be positive", c.TargetMult)
	}
	if c.BufferMult <= 0 {
		return fmt.Errorf("BufferMult (%f) must be positive", c.BufferMult)
	}
	if c.VolumeMult <= 0 {
		return fmt.Errorf("VolumeMult (%f) must be positive", c.VolumeMult)
	}
	if !c.Session.Valid() {
		return fmt.Errorf("session start %s is after end %s", c.Session.Start, c.Session.End)
	}
	return nil
}
