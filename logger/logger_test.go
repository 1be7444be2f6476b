package logger_test

import (
	"testing"

	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/testutils"
)

func TestNewZapLogger(t *testing.T) {
	l, err := logger.NewZapLogger()
	if err != nil {
		t.Fatalf("NewZapLogger failed: %v", err)
	}
	// Smoke: must not panic with mixed field types.
	l.Info("hello", logger.String("k", "v"), logger.Float64("f", 1.5), logger.Int("n", 2))
}

func TestMockLogger(t *testing.T) {
	l := testutils.NewMockLogger()
	l.Info("hello", logger.String("k", "v"))
	l.Warn("careful")
	if got := l.LastMessage(); got != "careful" {
		t.Fatalf("expected last message 'careful', got %q", got)
	}
	if l.Count() != 2 {
		t.Fatalf("expected 2 entries, got %d", l.Count())
	}
}
