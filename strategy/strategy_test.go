package strategy

import (
	"testing"

	"github.com/elijahgaraz/Forex-Scalper-Live/config"
	"github.com/elijahgaraz/Forex-Scalper-Live/testutils"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

func TestNew_CoversAllVariants(t *testing.T) {
	kinds := []string{"safe", "moderate", "aggressive", "momentum", "mean_reversion"}
	for _, k := range kinds {
		s, err := New(k, config.DefaultSafeConfig(), testutils.NewMockLogger())
		if err != nil {
			t.Fatalf("New(%q) failed: %v", k, err)
		}
		if s.Name() == "" {
			t.Fatalf("New(%q) returned an unnamed strategy", k)
		}
	}
	if _, err := New("martingale", config.DefaultSafeConfig(), testutils.NewMockLogger()); err == nil {
		t.Fatal("expected error for unknown strategy kind")
	}
}

// action == hold exactly when both offsets are nil, for every variant.
func TestDecision_OffsetInvariant(t *testing.T) {
	log := testutils.NewMockLogger()
	cfg := config.DefaultSafeConfig()
	strategies := []Strategy{
		mustSafe(t, cfg, log),
		NewModerate(log),
		NewAggressive(log),
		NewMomentum(log),
		NewMeanReversion(log),
	}
	inputs := []types.MarketData{
		{},
		marketData(&types.Snapshot{Bars: flatBars(5, 100, 0.5, sessionNoon)}),
		marketData(snapWithLastClose(60, 100, 1, 101, sessionNoon)),
		marketData(snapWithLastClose(60, 100, 1, 99, sessionNoon)),
	}
	for _, s := range strategies {
		for _, in := range inputs {
			d := s.Decide(in)
			holdOffsets := d.SLOffset == nil && d.TPOffset == nil
			if (d.Action == types.Hold) != holdOffsets {
				t.Fatalf("%s: offset invariant violated: %+v", s.Name(), d)
			}
			if d.Action != types.Hold && (d.SLOffset == nil || d.TPOffset == nil) {
				t.Fatalf("%s: trade with missing offset: %+v", s.Name(), d)
			}
		}
	}
}

func mustSafe(t *testing.T, cfg config.SafeConfig, log *testutils.MockLogger) *Safe {
	t.Helper()
	s, err := NewSafe(cfg, log)
	if err != nil {
		t.Fatalf("NewSafe failed: %v", err)
	}
	return s
}
