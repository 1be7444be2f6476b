package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scalper_decisions_total",
			Help: "Total decisions emitted (by strategy and action).",
		},
		[]string{"strategy", "action"},
	)

	HoldReasons = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scalper_holds_total",
			Help: "Hold decisions by rejection reason (by strategy).",
		},
		[]string{"strategy", "reason"},
	)

	TrailingStopsArmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scalper_trailing_stops_armed_total",
			Help: "Trailing-stop activations per strategy instance name.",
		},
		[]string{"strategy"},
	)
)

func init() {
	prometheus.MustRegister(DecisionsTotal, HoldReasons, TrailingStopsArmed)
}
