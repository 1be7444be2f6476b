package types

import (
	"testing"
	"time"
)

func TestDecisionConstructors(t *testing.T) {
	h := HoldDecision("x: insufficient data")
	if h.Action != Hold || h.SLOffset != nil || h.TPOffset != nil {
		t.Fatalf("hold must carry no offsets: %+v", h)
	}

	d := TradeDecision(Buy, "x: long", 2.0, 1.0)
	if d.Action != Buy || d.SLOffset == nil || d.TPOffset == nil {
		t.Fatalf("trade must carry both offsets: %+v", d)
	}
	if *d.SLOffset != 2.0 || *d.TPOffset != 1.0 {
		t.Fatalf("unexpected offsets: %+v", d)
	}

	// A negative stop offset is a valid in-profit stop, not an error.
	neg := TradeDecision(Sell, "x: ratcheted", -0.2, 1.0)
	if *neg.SLOffset != -0.2 {
		t.Fatalf("negative sl_offset must round-trip: %+v", neg)
	}
}

func TestSnapshotAccessors(t *testing.T) {
	ts := time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)
	s := &Snapshot{Bars: []Bar{
		{Time: ts, Open: 1, High: 3, Low: 0.5, Close: 2},
		{Time: ts.Add(time.Minute), Open: 2, High: 4, Low: 1.5, Close: 3},
	}}

	if s.Len() != 2 {
		t.Fatalf("Len = %d", s.Len())
	}
	if s.Last().Close != 3 {
		t.Fatalf("Last().Close = %f", s.Last().Close)
	}
	if got := s.Closes(); got[0] != 2 || got[1] != 3 {
		t.Fatalf("Closes = %v", got)
	}
	if got := s.Highs(); got[0] != 3 || got[1] != 4 {
		t.Fatalf("Highs = %v", got)
	}
	if got := s.Lows(); got[0] != 0.5 || got[1] != 1.5 {
		t.Fatalf("Lows = %v", got)
	}

	if s.HasVolume() {
		t.Fatal("no volume series attached")
	}
	s.Volumes = []float64{10}
	if s.HasVolume() {
		t.Fatal("mismatched volume series must not count as present")
	}
	s.Volumes = []float64{10, 20}
	if !s.HasVolume() {
		t.Fatal("expected volume series to be present")
	}
}
