package types

import "time"

// Action is the discrete trading decision a strategy can emit.
type Action string

const (
	Buy  Action = "buy"
	Sell Action = "sell"
	Hold Action = "hold"
)

// Bar is a single OHLC bar. Timestamps increase across a snapshot; the last
// bar is "now".
type Bar struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Snapshot is the rolling window of bars handed to each decision call.
// Volumes is either empty (the feed carries no volume data) or exactly one
// value per bar; the empty case disables volume-based filters rather than
// failing. Snapshots are read-only to the strategies.
type Snapshot struct {
	Bars    []Bar
	Volumes []float64
}

func (s *Snapshot) Len() int { return len(s.Bars) }

// HasVolume reports whether a usable volume series is attached.
func (s *Snapshot) HasVolume() bool {
	return len(s.Volumes) > 0 && len(s.Volumes) == len(s.Bars)
}

// Last returns the most recent bar. Callers must check Len first.
func (s *Snapshot) Last() Bar { return s.Bars[len(s.Bars)-1] }

func (s *Snapshot) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

func (s *Snapshot) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

func (s *Snapshot) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

// MarketData is the input to a decision call. OHLC1M is the 1-minute frame;
// a nil snapshot is reported as insufficient data, not an error.
type MarketData struct {
	OHLC1M *Snapshot
}

// Decision is the structured output of one decision call. SLOffset and
// TPOffset are absolute price distances from entry; both are nil exactly
// when Action is Hold. A negative SLOffset is valid and means the stop sits
// at or beyond breakeven (trailing-stop ratchet).
type Decision struct {
	Action   Action
	Comment  string
	SLOffset *float64
	TPOffset *float64
}

// HoldDecision builds a hold result with no offsets.
func HoldDecision(comment string) Decision {
	return Decision{Action: Hold, Comment: comment}
}

// TradeDecision builds a buy/sell result carrying both offsets.
func TradeDecision(action Action, comment string, sl, tp float64) Decision {
	return Decision{Action: action, Comment: comment, SLOffset: &sl, TPOffset: &tp}
}
