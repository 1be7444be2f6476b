// Command scalper replays a CSV bar history through one of the strategy
// variants, logging every decision and exposing prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elijahgaraz/Forex-Scalper-Live/config"
	"github.com/elijahgaraz/Forex-Scalper-Live/feed"
	"github.com/elijahgaraz/Forex-Scalper-Live/logger"
	"github.com/elijahgaraz/Forex-Scalper-Live/strategy"
	"github.com/elijahgaraz/Forex-Scalper-Live/types"
)

func main() {
	var (
		configPath  = flag.String("config", "", "optional YAML config file")
		csvPath     = flag.String("csv", "", "bar history CSV (time,open,high,low,close[,volume])")
		kind        = flag.String("strategy", "", "strategy kind (safe, moderate, aggressive, momentum, mean_reversion)")
		metricsAddr = flag.String("metrics-addr", "", "prometheus listen address")
		window      = flag.Int("window", 200, "rolling snapshot size in bars")
	)
	flag.Parse()

	if err := run(*configPath, *csvPath, *kind, *metricsAddr, *window); err != nil {
		fmt.Fprintln(os.Stderr, "scalper:", err)
		os.Exit(1)
	}
}

func run(configPath, csvPath, kind, metricsAddr string, window int) error {
	cfg := config.DefaultSafeConfig()
	resolvedKind := "safe"
	resolvedAddr := ":9090"
	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg, err = f.SafeConfig()
		if err != nil {
			return err
		}
		resolvedKind = f.Strategy
		resolvedAddr = f.MetricsAddr
	}
	// Flags win over the config file.
	if kind != "" {
		resolvedKind = kind
	}
	if metricsAddr != "" {
		resolvedAddr = metricsAddr
	}
	if csvPath == "" {
		return fmt.Errorf("-csv is required")
	}

	log, err := logger.NewZapLogger()
	if err != nil {
		return err
	}

	strat, err := strategy.New(resolvedKind, cfg, log)
	if err != nil {
		return err
	}

	history, err := feed.LoadCSV(csvPath)
	if err != nil {
		return err
	}

	if resolvedAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(resolvedAddr, mux); err != nil {
				log.Error("metrics_server_failed", logger.Err(err))
			}
		}()
	}

	log.Info("replay_start",
		logger.String("strategy", strat.Name()),
		logger.Int("bars", history.Len()),
		logger.Int("window", window),
	)

	replay := feed.NewReplay(history, window)
	counts := map[types.Action]int{}
	for {
		data, ok := replay.Next()
		if !ok {
			break
		}
		d := strat.Decide(data)
		counts[d.Action]++
		if d.Action != types.Hold {
			log.Info("decision",
				logger.String("action", string(d.Action)),
				logger.String("comment", d.Comment),
				logger.Float64("sl_offset", *d.SLOffset),
				logger.Float64("tp_offset", *d.TPOffset),
			)
		}
	}

	log.Info("replay_done",
		logger.Int("buys", counts[types.Buy]),
		logger.Int("sells", counts[types.Sell]),
		logger.Int("holds", counts[types.Hold]),
	)
	return nil
}
