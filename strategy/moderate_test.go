package strategy

import (
	"strings"
	"testing"

	"github.com/elijahgaraz/Forex-Scalper-Live/testutils"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

func TestModerate_InsufficientData(t *testing.T) {
	m := NewModerate(testutils.NewMockLogger())
	snap := &types.Snapshot{Bars: flatBars(19, 100, 0.5, sessionNoon)}
	d := m.Decide(marketData(snap))
	if d.Action != types.Hold || !strings.Contains(d.Comment, "insufficient data") {
		t.Fatalf("expected insufficient-data hold, got %+v", d)
	}
}

func TestModerate_TrendSignals(t *testing.T) {
	m := NewModerate(testutils.NewMockLogger())

	d := m.Decide(marketData(snapWithLastClose(30, 100, 0.5, 101, sessionNoon)))
	if d.Action != types.Buy || !strings.Contains(d.Comment, "bullish trend detected") {
		t.Fatalf("expected bullish buy, got %+v", d)
	}
	if d.SLOffset == nil || *d.SLOffset <= 0 || d.TPOffset == nil || *d.TPOffset <= 0 {
		t.Fatalf("trade offsets must be positive, got %+v", d)
	}
	// Stop is wider than target (1.5 vs 1.0 ATR multiples).
	if *d.SLOffset <= *d.TPOffset {
		t.Fatalf("expected sl > tp, got sl=%f tp=%f", *d.SLOffset, *d.TPOffset)
	}

	d = m.Decide(marketData(snapWithLastClose(30, 100, 0.5, 99, sessionNoon)))
	if d.Action != types.Sell || !strings.Contains(d.Comment, "bearish trend detected") {
		t.Fatalf("expected bearish sell, got %+v", d)
	}
}
