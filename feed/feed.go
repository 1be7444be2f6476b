// Package feed turns recorded bar data into the rolling snapshots the
// strategies consume. It covers replay from CSV only; live feed management
// belongs to the surrounding system.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

// LoadCSV reads bars from a file with rows of
//
//	time,open,high,low,close[,volume]
//
// Time is RFC3339 or unix seconds. A header row is skipped if present. The
// volume column is all-or-nothing: if the first data row has six fields every
// row must, and the snapshot carries a volume series; otherwise it carries
// none.
func LoadCSV(path string) (*types.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses the same format from any reader.
func ReadCSV(r io.Reader) (*types.Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	snap := &types.Snapshot{}
	hasVolume := false
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			if _, err := parseTime(rec[0]); err != nil {
				// header row
				continue
			}
		}
		if len(rec) != 5 && len(rec) != 6 {
			return nil, fmt.Errorf("line %d: want 5 or 6 fields, got %d", line, len(rec))
		}
		if len(snap.Bars) == 0 {
			hasVolume = len(rec) == 6
		} else if hasVolume != (len(rec) == 6) {
			return nil, fmt.Errorf("line %d: inconsistent volume column", line)
		}

		ts, err := parseTime(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		vals := make([]float64, len(rec)-1)
		for i, s := range rec[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", line, i+2, err)
			}
			vals[i] = v
		}
		snap.Bars = append(snap.Bars, types.Bar{
			Time: ts, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3],
		})
		if hasVolume {
			snap.Volumes = append(snap.Volumes, vals[4])
		}
	}
	if len(snap.Bars) == 0 {
		return nil, fmt.Errorf("no bars")
	}
	return snap, nil
}

func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// Replay walks a loaded history one bar at a time, producing the trailing
// window ending at each bar — the same shape a live feed would deliver per
// decision cycle.
type Replay struct {
	src    *types.Snapshot
	window int
	pos    int
}

// NewReplay creates a replay over src with the given maximum window size.
func NewReplay(src *types.Snapshot, window int) *Replay {
	if window <= 0 {
		window = src.Len()
	}
	return &Replay{src: src, window: window}
}

// Next returns the market data for the next bar, or ok=false when the
// history is exhausted. Early snapshots are shorter than the window; the
// strategies' data-sufficiency gate handles those.
func (r *Replay) Next() (types.MarketData, bool) {
	if r.pos >= r.src.Len() {
		return types.MarketData{}, false
	}
	r.pos++
	start := r.pos - r.window
	if start < 0 {
		start = 0
	}
	win := &types.Snapshot{Bars: r.src.Bars[start:r.pos]}
	if r.src.HasVolume() {
		win.Volumes = r.src.Volumes[start:r.pos]
	}
	return types.MarketData{OHLC1M: win}, true
}
